// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for the checktica CLI using
// log/slog. The library itself never calls Setup; it logs through whatever
// *slog.Logger it is given.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler.
func Setup(verbose, quiet bool) {
	slog.SetDefault(New(os.Stderr, verbose, quiet, FormatText))
}

// SetupWithFormat is Setup with a selectable handler. An unknown format is
// reported and nothing is changed.
func SetupWithFormat(verbose, quiet bool, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	slog.SetDefault(New(os.Stderr, verbose, quiet, format))
	return nil
}

// New builds a logger writing to w. Quiet wins over verbose.
func New(w io.Writer, verbose, quiet bool, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(verbose, quiet)}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Level maps the verbosity flags to a slog level.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// ValidateFormat rejects formats other than text and json. Empty means text.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "", FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown log format %q (must be text or json)", format)
	}
}
