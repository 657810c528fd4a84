// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/scan"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func fixedNow() time.Time {
	return time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
}

// restoreFormatters re-registers the built-in formatters after a test that
// reset the registry.
func restoreFormatters() {
	RegisterFormatter(NewTextFormatter())
	RegisterFormatter(NewJSONFormatter())
	RegisterFormatter(NewMarkdownFormatter())
}

// resetFmtForTesting clears the formatter registry.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

// sampleReport covers every entry shape: flagged, llm below threshold,
// human, failed and skipped.
func sampleReport() *scan.Report {
	limited := &checktica.Error{Kind: checktica.KindLimitExceeded, Message: "slow down"}
	return &scan.Report{
		Method:    checktica.Balanced,
		Threshold: 0.65,
		Entries: []scan.Entry{
			{Source: "essays/a.txt", Status: scan.StatusOK, Flagged: true,
				Result: &checktica.Result{IsLLMGenerated: true, Confidence: 0.92, Remarks: "Uniform sentence length."}},
			{Source: "essays/b.txt", Status: scan.StatusOK,
				Result: &checktica.Result{IsLLMGenerated: true, Confidence: 0.55, Remarks: "Borderline."}},
			{Source: "essays/c.md", Status: scan.StatusOK,
				Result: &checktica.Result{IsLLMGenerated: false, Confidence: 0.75, Remarks: "None."}},
			{Source: "essays/d.md", Status: scan.StatusFailed, Error: limited.Error(), Err: limited},
			{Source: "essays/e.md", Status: scan.StatusSkipped, Error: "skipped: " + limited.Error(), Err: errors.New("x")},
		},
	}
}
