// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package checktica

import (
	"fmt"
	"math"
)

// Result is the verdict returned by the detection API.
type Result struct {
	// IsLLMGenerated reports whether the text appears to be machine generated.
	IsLLMGenerated bool `json:"is_llm_generated"`

	// Confidence is the service's certainty in the verdict, in [0.0, 1.0].
	Confidence float64 `json:"confidence"`

	// Remarks is free-form commentary from the service.
	Remarks string `json:"remarks"`
}

// NewResult builds a Result, rejecting a confidence outside [0.0, 1.0].
func NewResult(isLLMGenerated bool, confidence float64, remarks string) (*Result, error) {
	if err := checkConfidence(confidence); err != nil {
		return nil, newError(KindInvalidArgument, err.Error(), nil)
	}
	return &Result{
		IsLLMGenerated: isLLMGenerated,
		Confidence:     confidence,
		Remarks:        remarks,
	}, nil
}

func checkConfidence(confidence float64) error {
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %g", confidence)
	}
	return nil
}

// Exceeds reports whether the text was judged machine generated with a
// confidence strictly above threshold.
func (r *Result) Exceeds(threshold float64) bool {
	return r.IsLLMGenerated && r.Confidence > threshold
}
