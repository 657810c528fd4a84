// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package checktica

import (
	"fmt"
	"slices"
	"strings"
)

// Method selects the accuracy/speed tradeoff used by the remote classifier.
// Faster methods tend to be less accurate.
type Method string

// Detection methods, ordered from most accurate (slowest) to fastest.
const (
	MostAccurate Method = "most_accurate"
	MoreAccurate Method = "more_accurate"
	Balanced     Method = "balanced"
	Fast         Method = "fast"
	Fastest      Method = "fastest"
)

// DefaultMethod is the recommended method.
const DefaultMethod = MostAccurate

var methods = []Method{MostAccurate, MoreAccurate, Balanced, Fast, Fastest}

// Methods returns every supported method, most accurate first.
func Methods() []Method {
	return slices.Clone(methods)
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	return slices.Contains(methods, m)
}

func (m Method) String() string { return string(m) }

// ParseMethod converts external input into a Method. It fails with
// KindInvalidArgument when s is empty or unknown; the message lists every
// legal value.
func ParseMethod(s string) (Method, error) {
	if s == "" {
		return "", newError(KindInvalidArgument, "`method` parameter cannot be empty", nil)
	}
	m := Method(s)
	if !m.Valid() {
		return "", newError(KindInvalidArgument, fmt.Sprintf(
			"`method` cannot take the value %q; allowed values are: %s", s, methodList()), nil)
	}
	return m, nil
}

func methodList() string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// validateInput rejects a request before it reaches the network.
func validateInput(text string, method Method) error {
	if text == "" {
		return newError(KindInvalidArgument, "`text` parameter cannot be empty", nil)
	}
	_, err := ParseMethod(string(method))
	return err
}
