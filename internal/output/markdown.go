// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/checktica/checktica-go/internal/scan"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes a report as a Markdown summary with one table row
// per input.
type MarkdownFormatter struct{}

var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the report to w. An empty report writes only the header.
func (m *MarkdownFormatter) Format(report *scan.Report, w io.Writer) error {
	if err := writeMarkdownHeader(w, report); err != nil {
		return err
	}
	if len(report.Entries) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "| Source | Verdict | Confidence | Remarks |\n|--------|---------|------------|---------|\n"); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}
	for _, e := range report.Entries {
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			escapeCell(e.Source), verdictLabel(e), confidenceCell(e), escapeCell(remarksCell(e))); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write table end: %w", err)
	}
	return nil
}

func writeMarkdownHeader(w io.Writer, report *scan.Report) error {
	if _, err := fmt.Fprintf(w, "# Checktica Detection Results\n\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	sum := report.Summary()
	if _, err := fmt.Fprintf(w, "**Inputs:** %d | **Flagged:** %d | **Failed:** %d | **Skipped:** %d | **Method:** %s | **Threshold:** %.2f\n\n",
		sum.Total, sum.Flagged, sum.Failed, sum.Skipped, report.Method, report.Threshold); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func confidenceCell(e scan.Entry) string {
	if e.Result == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", e.Result.Confidence)
}

func remarksCell(e scan.Entry) string {
	if e.Result == nil {
		return e.Error
	}
	return e.Result.Remarks
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// escapeCell keeps a value inside a single table cell.
func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}
