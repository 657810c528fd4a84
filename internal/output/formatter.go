// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

// Package output defines the Formatter interface for writing detection
// reports in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/checktica/checktica-go/internal/scan"
)

// Formatter writes a scan report to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "text", "json", "markdown").
	Name() string

	// Format writes the report to w.
	Format(report *scan.Report, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// FormatNames returns the registered format names in sorted order.
func FormatNames() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return sortedNames()
}

func sortedNames() []string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatNames returns a comma-separated sorted list of registered format names.
// The caller must hold fmtMu.
func formatNames() string {
	return strings.Join(sortedNames(), ", ")
}

// verdictLabel is the one-word classification shown for an entry.
func verdictLabel(e scan.Entry) string {
	switch {
	case e.Status != scan.StatusOK:
		return strings.ToUpper(string(e.Status))
	case e.Flagged:
		return "FLAGGED"
	case e.Result.IsLLMGenerated:
		return "llm"
	default:
		return "human"
	}
}
