// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/scan"
)

func ptr(f float64) *float64 { return &f }

func TestOverlay(t *testing.T) {
	base := &Config{
		APIURL:       "https://global.example",
		Method:       "fast",
		Timeout:      "10s",
		MaxAttempts:  2,
		Threshold:    ptr(0.5),
		OutputFormat: "json",
		Extensions:   []string{".txt"},
	}
	over := &Config{
		Method:       "balanced",
		Threshold:    ptr(0),
		LimitMessage: "quota",
	}

	merged := Overlay(base, over)
	assert.Equal(t, "https://global.example", merged.APIURL)
	assert.Equal(t, "balanced", merged.Method)
	assert.Equal(t, "10s", merged.Timeout)
	assert.Equal(t, 2, merged.MaxAttempts)
	require.NotNil(t, merged.Threshold)
	assert.Zero(t, *merged.Threshold, "an explicit zero threshold overrides")
	assert.Equal(t, "json", merged.OutputFormat)
	assert.Equal(t, "quota", merged.LimitMessage)
	assert.Equal(t, []string{".txt"}, merged.Extensions)

	merged.Extensions[0] = ".changed"
	*merged.Threshold = 0.3
	assert.Equal(t, ".txt", base.Extensions[0], "base is not aliased")
	assert.Zero(t, *over.Threshold, "over is not aliased")
}

func TestMerge_CLIWins(t *testing.T) {
	file := &Config{
		APIURL:       "https://file.example",
		Method:       "fast",
		Timeout:      "10s",
		MaxAttempts:  5,
		Threshold:    ptr(0.9),
		OutputFormat: "markdown",
		LimitMessage: "file quota",
		Extensions:   []string{".md"},
	}
	cli := Settings{
		APIURL:       "http://localhost:8080",
		Method:       checktica.Fastest,
		Timeout:      time.Second,
		MaxAttempts:  1,
		Threshold:    ptr(0.1),
		OutputFormat: "json",
		LimitMessage: "cli quota",
		Extensions:   []string{".txt"},
	}

	got := Merge(file, cli)
	assert.Equal(t, cli, got)
}

func TestMerge_FileFillsGaps(t *testing.T) {
	file := &Config{
		APIURL:       "https://file.example",
		Method:       "fast",
		Timeout:      "10s",
		MaxAttempts:  5,
		Threshold:    ptr(0.9),
		OutputFormat: "markdown",
		LimitMessage: "file quota",
		Extensions:   []string{".md"},
	}

	got := Merge(file, Settings{})
	assert.Equal(t, "https://file.example", got.APIURL)
	assert.Equal(t, checktica.Fast, got.Method)
	assert.Equal(t, 10*time.Second, got.Timeout)
	assert.Equal(t, 5, got.MaxAttempts)
	require.NotNil(t, got.Threshold)
	assert.InDelta(t, 0.9, *got.Threshold, 0.001)
	assert.Equal(t, "markdown", got.OutputFormat)
	assert.Equal(t, "file quota", got.LimitMessage)
	assert.Equal(t, []string{".md"}, got.Extensions)
}

func TestMerge_BadTimeoutIgnored(t *testing.T) {
	got := Merge(&Config{Timeout: "soon"}, Settings{})
	assert.Zero(t, got.Timeout)
}

func TestSettings_WithDefaults(t *testing.T) {
	got := Settings{}.WithDefaults()
	assert.Empty(t, got.APIURL)
	assert.Equal(t, checktica.DefaultMethod, got.Method)
	assert.Equal(t, checktica.DefaultTimeout, got.Timeout)
	assert.Equal(t, 3, got.MaxAttempts)
	require.NotNil(t, got.Threshold)
	assert.InDelta(t, scan.DefaultThreshold, *got.Threshold, 0.0001)
	assert.Equal(t, "text", got.OutputFormat)
	assert.Equal(t, checktica.DefaultLimitMessage, got.LimitMessage)
	assert.Equal(t, scan.DefaultExtensions, got.Extensions)
}

func TestSettings_WithDefaultsKeepsValues(t *testing.T) {
	s := Settings{Method: checktica.Fast, Threshold: ptr(0), MaxAttempts: 1}
	got := s.WithDefaults()
	assert.Equal(t, checktica.Fast, got.Method)
	assert.Zero(t, *got.Threshold)
	assert.Equal(t, 1, got.MaxAttempts)
}

func TestSettings_ClientOptions(t *testing.T) {
	s := Settings{
		APIURL:       "http://localhost:8080/",
		Timeout:      5 * time.Second,
		MaxAttempts:  1,
		LimitMessage: "quota",
	}

	c, err := checktica.New(s.ClientOptions()...)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/v1/is_ai", c.Endpoint())
	assert.Equal(t, 5*time.Second, c.Timeout())
	assert.Equal(t, 1, c.MaxAttempts())
}

func TestSettings_ClientOptionsEmpty(t *testing.T) {
	assert.Empty(t, Settings{}.ClientOptions())
}
