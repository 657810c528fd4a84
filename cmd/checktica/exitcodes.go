// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/checktica/checktica-go"
)

// Exit codes for the checktica CLI.
const (
	ExitOK          = 0 // Every input classified.
	ExitInvalidArgs = 1 // Invalid arguments, config, or input.
	ExitFlagged     = 2 // --fail-on-flag and at least one input was flagged.
	ExitRateLimited = 3 // The API rate limit was reached.
	ExitAPIFailure  = 4 // The API was unreachable or answered with an invalid response.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitFlagged:
			msg = "checktica: machine-generated text detected"
		case ExitRateLimited:
			msg = "checktica: rate limit exceeded"
		case ExitAPIFailure:
			msg = "checktica: detection failed"
		default:
			msg = fmt.Sprintf("checktica: exit code %d", code)
		}
	}
	return &exitCodeError{code: code, msg: msg}
}

// exitCodeFor maps a detection error to the exit code reported for it.
func exitCodeFor(err error) int {
	switch checktica.KindOf(err) {
	case checktica.KindLimitExceeded:
		return ExitRateLimited
	case checktica.KindAPIAccess, checktica.KindInvalidResponse:
		return ExitAPIFailure
	default:
		return ExitInvalidArgs
	}
}
