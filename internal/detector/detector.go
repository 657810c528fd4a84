// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

// Package detector defines the narrow interface the CLI, scanner and MCP
// server use to reach the Checktica API, so tests can substitute a fake.
package detector

import (
	"context"

	"github.com/checktica/checktica-go"
)

// Detector classifies a single text.
type Detector interface {
	// Detect returns the verdict for text. Implementations must respect
	// context cancellation and deadlines.
	Detect(ctx context.Context, text string, method checktica.Method) (*checktica.Result, error)
}

// Compile-time check that the real client satisfies Detector.
var _ Detector = (*checktica.Client)(nil)
