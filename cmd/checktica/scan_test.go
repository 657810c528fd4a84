// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/config"
	"github.com/checktica/checktica-go/internal/detector"
	"github.com/checktica/checktica-go/internal/output"
	"github.com/checktica/checktica-go/internal/scan"
)

func humanVerdict(conf float64) detector.MockResponse {
	return detector.MockResponse{Result: &checktica.Result{IsLLMGenerated: false, Confidence: conf, Remarks: "None."}}
}

func setupEssays(t *testing.T) string {
	t.Helper()
	dir := isolate(t)
	writeTestFile(t, dir, "essays/a.txt", "first")
	writeTestFile(t, dir, "essays/b.md", "second")
	writeTestFile(t, dir, "essays/c.txt", "third")
	writeTestFile(t, dir, "essays/notes.go", "package notes")
	return dir
}

func TestScan_Directory(t *testing.T) {
	setupEssays(t)
	mock := detector.NewMockDetector(llmVerdict(0.9), humanVerdict(0.8), llmVerdict(0.3))
	useDetector(t, mock)

	out, err := execute(t, "", "scan", "essays")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "FLAGGED  "+filepath.Join("essays", "a.txt")+"  confidence=0.90  Uniform cadence.", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "human"))
	assert.True(t, strings.HasPrefix(lines[2], "llm"))
	assert.Equal(t, "3 checked, 1 flagged, 0 failed, 0 skipped (method most_accurate, threshold 0.65)", lines[4])

	calls := mock.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{calls[0].Text, calls[1].Text, calls[2].Text})
}

func TestScan_JSONAndMethod(t *testing.T) {
	setupEssays(t)
	mock := detector.NewMockDetector()
	useDetector(t, mock)

	out, err := execute(t, "", "scan", "--format", "json", "--method", "fast", "essays")
	require.NoError(t, err)

	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, 3, env.Metadata.Total)
	assert.Equal(t, "fast", env.Metadata.Method)
	for _, c := range mock.Calls() {
		assert.Equal(t, checktica.Fast, c.Method)
	}
}

func TestScan_ExtensionsFlag(t *testing.T) {
	setupEssays(t)
	mock := detector.NewMockDetector()
	useDetector(t, mock)

	_, err := execute(t, "", "scan", "--extensions", ".go", "essays")
	require.NoError(t, err)
	require.Len(t, mock.Calls(), 1)
	assert.Equal(t, "package notes", mock.Calls()[0].Text)
}

func TestScan_ExtensionsFromConfig(t *testing.T) {
	dir := setupEssays(t)
	writeTestFile(t, dir, config.FileName, "extensions: [.md]\n")
	mock := detector.NewMockDetector()
	useDetector(t, mock)

	_, err := execute(t, "", "scan", "essays")
	require.NoError(t, err)
	require.Len(t, mock.Calls(), 1)
	assert.Equal(t, "second", mock.Calls()[0].Text)
}

func TestScan_RateLimitStopsScan(t *testing.T) {
	setupEssays(t)
	mock := detector.NewMockDetector(
		llmVerdict(0.2),
		detector.MockResponse{Err: &checktica.Error{Kind: checktica.KindLimitExceeded, Message: "Rate limit has been exceeded. Try again later."}},
	)
	useDetector(t, mock)

	out, err := execute(t, "", "scan", "--format", "json", "essays")
	require.Error(t, err)
	assert.Equal(t, ExitRateLimited, exitCode(err))
	assert.Contains(t, err.Error(), "1 of 3 inputs skipped")
	assert.Len(t, mock.Calls(), 2)

	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &env), "the partial report is still written")
	assert.Equal(t, scan.StatusSkipped, env.Entries[2].Status)
}

func TestScan_APIFailure(t *testing.T) {
	setupEssays(t)
	useDetector(t, detector.NewMockDetector(
		detector.MockResponse{Err: &checktica.Error{Kind: checktica.KindAPIAccess, Message: "could not connect to the Checktica API"}},
		humanVerdict(0.9),
	))

	_, err := execute(t, "", "scan", "essays")
	require.Error(t, err)
	assert.Equal(t, ExitAPIFailure, exitCode(err))
	assert.Contains(t, err.Error(), "1 of 3 inputs failed")
}

func TestScan_FailOnFlag(t *testing.T) {
	setupEssays(t)
	useDetector(t, detector.NewMockDetector(humanVerdict(0.9), llmVerdict(0.99)))

	_, err := execute(t, "", "scan", "--fail-on-flag", "essays")
	require.Error(t, err)
	assert.Equal(t, ExitFlagged, exitCode(err))
	assert.Contains(t, err.Error(), "2 of 3 inputs flagged")
}

func TestScan_NoMatchingFiles(t *testing.T) {
	dir := isolate(t)
	writeTestFile(t, dir, "src/main.go", "package main")
	mock := detector.NewMockDetector()
	useDetector(t, mock)

	_, err := execute(t, "", "scan", "src")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
	assert.Contains(t, err.Error(), "no matching files")
	assert.Empty(t, mock.Calls())
}

func TestScan_MissingPath(t *testing.T) {
	isolate(t)
	useDetector(t, detector.NewMockDetector())

	_, err := execute(t, "", "scan", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
	assert.Contains(t, err.Error(), "cannot access")
}

func TestScan_RequiresPath(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "scan")
	assert.Error(t, err)
}
