// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/checktica/checktica-go/internal/scan"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps entries with metadata for the JSON output format.
type JSONEnvelope struct {
	Entries  []scan.Entry `json:"entries"`
	Metadata JSONMetadata `json:"metadata"`
}

// JSONMetadata describes the run that produced the entries.
type JSONMetadata struct {
	Total       int     `json:"total"`
	Flagged     int     `json:"flagged"`
	Failed      int     `json:"failed"`
	Skipped     int     `json:"skipped"`
	Method      string  `json:"method"`
	Threshold   float64 `json:"threshold"`
	GeneratedAt string  `json:"generated_at"`
}

// JSONFormatter writes a report as a JSON object with metadata envelope.
type JSONFormatter struct {
	// Compact forces single-line output. When false, output is pretty-printed
	// for terminals and buffers and compact for pipes and files.
	Compact bool

	nowFunc func() time.Time
}

var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the report as a JSON document to w.
func (f *JSONFormatter) Format(report *scan.Report, w io.Writer) error {
	entries := report.Entries
	if entries == nil {
		entries = []scan.Entry{}
	}

	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	sum := report.Summary()
	envelope := JSONEnvelope{
		Entries: entries,
		Metadata: JSONMetadata{
			Total:       sum.Total,
			Flagged:     sum.Flagged,
			Failed:      sum.Failed,
			Skipped:     sum.Skipped,
			Method:      report.Method.String(),
			Threshold:   report.Threshold,
			GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact pretty-prints for TTYs and compacts for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}
	return false
}
