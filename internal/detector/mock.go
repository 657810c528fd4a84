// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package detector

import (
	"context"
	"sync"

	"github.com/checktica/checktica-go"
)

// MockResponse defines a canned response for the mock detector. When both
// fields are nil the default verdict is returned.
type MockResponse struct {
	Result *checktica.Result
	Err    error
}

// Call records one Detect invocation.
type Call struct {
	Text   string
	Method checktica.Method
}

// MockDetector is a test double that returns pre-configured responses in
// sequence. After all responses are exhausted, it keeps returning the last one.
// It records every call for later assertion.
type MockDetector struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Call
	idx       int
}

// Compile-time check that MockDetector satisfies the Detector interface.
var _ Detector = (*MockDetector)(nil)

// NewMockDetector creates a mock that returns the given responses in order.
// With no responses, Detect returns a human-written verdict at 0.5 confidence.
func NewMockDetector(responses ...MockResponse) *MockDetector {
	return &MockDetector{responses: responses}
}

// Detect returns the next canned response and records the call. It respects
// context cancellation.
func (m *MockDetector) Detect(ctx context.Context, text string, method checktica.Method) (*checktica.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{Text: text, Method: method})

	if len(m.responses) == 0 {
		return defaultResult(), nil
	}

	r := m.responses[m.idx]
	if m.idx < len(m.responses)-1 {
		m.idx++
	}
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Result == nil {
		return defaultResult(), nil
	}
	res := *r.Result
	return &res, nil
}

func defaultResult() *checktica.Result {
	return &checktica.Result{Confidence: 0.5, Remarks: "mock"}
}

// Calls returns a copy of all calls received by this mock.
func (m *MockDetector) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset clears call history and rewinds the response sequence.
func (m *MockDetector) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = nil
	m.idx = 0
}
