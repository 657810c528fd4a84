// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/checktica/checktica-go/internal/scan"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

var (
	colorRed    = color.New(color.FgRed, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorFaint  = color.New(color.Faint)
)

// TextFormatter writes one line per input followed by a summary. Verdicts
// are colored unless color.NoColor is set.
type TextFormatter struct{}

var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (t *TextFormatter) Name() string {
	return "text"
}

// Format writes the report to w.
func (t *TextFormatter) Format(report *scan.Report, w io.Writer) error {
	for _, e := range report.Entries {
		if err := writeTextEntry(w, e); err != nil {
			return err
		}
	}

	sum := report.Summary()
	if _, err := fmt.Fprintf(w, "\n%d checked, %s, %d failed, %d skipped (method %s, threshold %.2f)\n",
		sum.Total, flaggedCount(sum.Flagged), sum.Failed, sum.Skipped, report.Method, report.Threshold); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func writeTextEntry(w io.Writer, e scan.Entry) error {
	label := colorVerdict(verdictLabel(e))
	var err error
	if e.Result == nil {
		_, err = fmt.Fprintf(w, "%-8s %s  %s\n", label, e.Source, colorFaint.Sprint(e.Error))
	} else {
		_, err = fmt.Fprintf(w, "%-8s %s  confidence=%.2f  %s\n", label, e.Source, e.Result.Confidence, e.Result.Remarks)
	}
	if err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

func colorVerdict(label string) string {
	switch label {
	case "FLAGGED", "FAILED":
		return colorRed.Sprint(label)
	case "llm", "SKIPPED":
		return colorYellow.Sprint(label)
	case "human":
		return colorGreen.Sprint(label)
	default:
		return label
	}
}

func flaggedCount(n int) string {
	s := fmt.Sprintf("%d flagged", n)
	if n > 0 {
		return colorRed.Sprint(s)
	}
	return s
}
