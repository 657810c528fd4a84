// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package detector_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/detector"
)

func TestMockDetector_DefaultResponse(t *testing.T) {
	m := detector.NewMockDetector()
	res, err := m.Detect(context.Background(), "hello", checktica.Fast)
	require.NoError(t, err)
	assert.False(t, res.IsLLMGenerated)
	assert.Equal(t, []detector.Call{{Text: "hello", Method: checktica.Fast}}, m.Calls())
}

func TestMockDetector_SequenceThenRepeatsLast(t *testing.T) {
	m := detector.NewMockDetector(
		detector.MockResponse{Result: &checktica.Result{IsLLMGenerated: true, Confidence: 0.9}},
		detector.MockResponse{Err: checktica.ErrLimitExceeded},
	)
	ctx := context.Background()

	res, err := m.Detect(ctx, "a", checktica.MostAccurate)
	require.NoError(t, err)
	assert.True(t, res.IsLLMGenerated)

	_, err = m.Detect(ctx, "b", checktica.MostAccurate)
	assert.ErrorIs(t, err, checktica.ErrLimitExceeded)

	_, err = m.Detect(ctx, "c", checktica.MostAccurate)
	assert.ErrorIs(t, err, checktica.ErrLimitExceeded)
	assert.Len(t, m.Calls(), 3)
}

func TestMockDetector_ReturnsCopies(t *testing.T) {
	canned := &checktica.Result{Confidence: 0.3}
	m := detector.NewMockDetector(detector.MockResponse{Result: canned})

	res, err := m.Detect(context.Background(), "x", checktica.Fast)
	require.NoError(t, err)
	res.Confidence = 0.99
	assert.Equal(t, 0.3, canned.Confidence)
}

func TestMockDetector_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := detector.NewMockDetector()
	_, err := m.Detect(ctx, "x", checktica.Fast)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}

func TestMockDetector_Reset(t *testing.T) {
	m := detector.NewMockDetector(
		detector.MockResponse{Result: &checktica.Result{Confidence: 0.1}},
		detector.MockResponse{Result: &checktica.Result{Confidence: 0.2}},
	)
	ctx := context.Background()
	_, _ = m.Detect(ctx, "x", checktica.Fast)
	m.Reset()

	res, err := m.Detect(ctx, "y", checktica.Fast)
	require.NoError(t, err)
	assert.Equal(t, 0.1, res.Confidence)
	assert.Len(t, m.Calls(), 1)
}

func TestMockDetector_EmptyResponseUsesDefault(t *testing.T) {
	m := detector.NewMockDetector(detector.MockResponse{})
	res, err := m.Detect(context.Background(), "hello", checktica.Balanced)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.IsLLMGenerated)
	assert.Equal(t, 0.5, res.Confidence)
}
