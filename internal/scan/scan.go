// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

// Package scan runs detection over a batch of texts, one request at a time,
// and flags the ones judged machine generated above a confidence threshold.
package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/detector"
	"github.com/checktica/checktica-go/internal/testable"
)

// DefaultThreshold is the confidence above which a generated verdict is flagged.
const DefaultThreshold = 0.65

// Status describes how a single input fared.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Input is one text to classify.
type Input struct {
	// Source names where the text came from (a file path, "-" for stdin).
	Source string
	Text   string
}

// Entry is the outcome for one Input.
type Entry struct {
	Source  string            `json:"source"`
	Status  Status            `json:"status"`
	Result  *checktica.Result `json:"result,omitempty"`
	Flagged bool              `json:"flagged"`
	Error   string            `json:"error,omitempty"`

	// Err is the underlying failure, kept for exit-code mapping.
	Err error `json:"-"`
}

// Report collects the entries of one run.
type Report struct {
	Method    checktica.Method `json:"method"`
	Threshold float64          `json:"threshold"`
	Entries   []Entry          `json:"entries"`
	Duration  time.Duration    `json:"-"`
}

// Summary counts entries by outcome.
type Summary struct {
	Total   int `json:"total"`
	Flagged int `json:"flagged"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Summary tallies the report.
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.Entries)}
	for _, e := range r.Entries {
		switch e.Status {
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
		if e.Flagged {
			s.Flagged++
		}
	}
	return s
}

// RateLimited reports whether the run was cut short by a rate-limit response.
func (r *Report) RateLimited() bool {
	for _, e := range r.Entries {
		if errors.Is(e.Err, checktica.ErrLimitExceeded) {
			return true
		}
	}
	return false
}

// FirstError returns the first failure recorded, or nil.
func (r *Report) FirstError() error {
	for _, e := range r.Entries {
		if e.Status == StatusFailed && e.Err != nil {
			return e.Err
		}
	}
	return nil
}

// Scanner classifies batches of texts.
type Scanner struct {
	// Detector performs the API calls.
	Detector detector.Detector

	// Method is the detection method used for every input. Empty means
	// checktica.DefaultMethod.
	Method checktica.Method

	// Threshold is the confidence a generated verdict must exceed to be
	// flagged. Zero is a valid threshold; use New for the default.
	Threshold float64

	// FS reads inputs. If nil, testable.DefaultFS is used.
	FS testable.FileSystem

	// Extensions filters files found while walking directories. Files named
	// directly are always read. If empty, DefaultExtensions is used.
	Extensions []string

	// ReadConcurrency bounds parallel file reads. If zero, 8 is used.
	ReadConcurrency int

	// Logger receives per-input progress. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// New returns a Scanner with the default method and threshold.
func New(d detector.Detector) *Scanner {
	return &Scanner{
		Detector:  d,
		Method:    checktica.DefaultMethod,
		Threshold: DefaultThreshold,
	}
}

// Run classifies inputs sequentially; at most one request is in flight. A
// rate-limit error stops the run and the remaining inputs are marked
// skipped, as is everything left when ctx is cancelled. Blank inputs are
// recorded as failures without calling the API.
func (s *Scanner) Run(ctx context.Context, inputs []Input) *Report {
	start := time.Now()
	method := s.Method
	if method == "" {
		method = checktica.DefaultMethod
	}
	logger := s.logger()

	report := &Report{
		Method:    method,
		Threshold: s.Threshold,
		Entries:   make([]Entry, 0, len(inputs)),
	}

	var stopErr error
	for _, in := range inputs {
		if stopErr == nil && ctx.Err() != nil {
			stopErr = ctx.Err()
		}
		if stopErr != nil {
			report.Entries = append(report.Entries, Entry{
				Source: in.Source,
				Status: StatusSkipped,
				Error:  fmt.Sprintf("skipped: %v", stopErr),
			})
			continue
		}

		entry := s.classify(ctx, in, method)
		report.Entries = append(report.Entries, entry)

		if errors.Is(entry.Err, checktica.ErrLimitExceeded) {
			logger.Warn("scan: rate limit reached, skipping remaining inputs", "source", in.Source)
			stopErr = entry.Err
		}
	}

	report.Duration = time.Since(start)
	return report
}

func (s *Scanner) classify(ctx context.Context, in Input, method checktica.Method) Entry {
	logger := s.logger()

	if strings.TrimSpace(in.Text) == "" {
		err := &checktica.Error{Kind: checktica.KindInvalidArgument, Message: "input is empty"}
		return Entry{Source: in.Source, Status: StatusFailed, Error: err.Error(), Err: err}
	}

	res, err := s.Detector.Detect(ctx, in.Text, method)
	if err != nil {
		logger.Debug("scan: detection failed", "source", in.Source, "error", err)
		return Entry{Source: in.Source, Status: StatusFailed, Error: err.Error(), Err: err}
	}

	flagged := res.Exceeds(s.Threshold)
	logger.Debug("scan: classified", "source", in.Source,
		"llm_generated", res.IsLLMGenerated, "confidence", res.Confidence, "flagged", flagged)
	return Entry{Source: in.Source, Status: StatusOK, Result: res, Flagged: flagged}
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Scanner) fs() testable.FileSystem {
	if s.FS != nil {
		return s.FS
	}
	return testable.DefaultFS
}
