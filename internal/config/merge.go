// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package config

import (
	"slices"
	"time"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/scan"
)

// Settings are the resolved values a command runs with.
type Settings struct {
	APIURL       string
	Method       checktica.Method
	Timeout      time.Duration
	MaxAttempts  int
	Threshold    *float64
	OutputFormat string
	LimitMessage string
	Extensions   []string
}

// Overlay returns base with every field set in over replacing it.
func Overlay(base, over *Config) *Config {
	merged := *base
	merged.Extensions = slices.Clone(base.Extensions)

	if over.APIURL != "" {
		merged.APIURL = over.APIURL
	}
	if over.Method != "" {
		merged.Method = over.Method
	}
	if over.Timeout != "" {
		merged.Timeout = over.Timeout
	}
	if over.MaxAttempts != 0 {
		merged.MaxAttempts = over.MaxAttempts
	}
	if over.Threshold != nil {
		t := *over.Threshold
		merged.Threshold = &t
	}
	if over.OutputFormat != "" {
		merged.OutputFormat = over.OutputFormat
	}
	if over.LimitMessage != "" {
		merged.LimitMessage = over.LimitMessage
	}
	if len(over.Extensions) > 0 {
		merged.Extensions = slices.Clone(over.Extensions)
	}
	return &merged
}

// Merge combines file-based config with CLI-provided settings.
// CLI values take precedence; zero-value CLI fields fall through to file config.
// The file config is expected to have passed Validate.
func Merge(fileCfg *Config, cli Settings) Settings {
	result := cli

	if result.APIURL == "" {
		result.APIURL = fileCfg.APIURL
	}
	if result.Method == "" && fileCfg.Method != "" {
		result.Method = checktica.Method(fileCfg.Method)
	}
	if result.Timeout == 0 && fileCfg.Timeout != "" {
		if d, err := time.ParseDuration(fileCfg.Timeout); err == nil {
			result.Timeout = d
		}
	}
	if result.MaxAttempts == 0 {
		result.MaxAttempts = fileCfg.MaxAttempts
	}
	if result.Threshold == nil && fileCfg.Threshold != nil {
		t := *fileCfg.Threshold
		result.Threshold = &t
	}
	if result.OutputFormat == "" {
		result.OutputFormat = fileCfg.OutputFormat
	}
	if result.LimitMessage == "" {
		result.LimitMessage = fileCfg.LimitMessage
	}
	if len(result.Extensions) == 0 && len(fileCfg.Extensions) > 0 {
		result.Extensions = slices.Clone(fileCfg.Extensions)
	}
	return result
}

// WithDefaults fills every unset field except APIURL, which is left empty so
// the client applies its own environment and default lookup.
func (s Settings) WithDefaults() Settings {
	if s.Method == "" {
		s.Method = checktica.DefaultMethod
	}
	if s.Timeout == 0 {
		s.Timeout = checktica.DefaultTimeout
	}
	if s.MaxAttempts == 0 {
		s.MaxAttempts = checktica.DefaultRetryConfig().MaxAttempts
	}
	if s.Threshold == nil {
		t := scan.DefaultThreshold
		s.Threshold = &t
	}
	if s.OutputFormat == "" {
		s.OutputFormat = "text"
	}
	if s.LimitMessage == "" {
		s.LimitMessage = checktica.DefaultLimitMessage
	}
	if len(s.Extensions) == 0 {
		s.Extensions = slices.Clone(scan.DefaultExtensions)
	}
	return s
}

// ClientOptions translates the settings into client options.
func (s Settings) ClientOptions() []checktica.Option {
	var opts []checktica.Option
	if s.APIURL != "" {
		opts = append(opts, checktica.WithBaseURL(s.APIURL))
	}
	if s.Timeout > 0 {
		opts = append(opts, checktica.WithTimeout(s.Timeout))
	}
	if s.MaxAttempts > 0 {
		rc := checktica.DefaultRetryConfig()
		rc.MaxAttempts = s.MaxAttempts
		opts = append(opts, checktica.WithRetry(rc))
	}
	if s.LimitMessage != "" {
		opts = append(opts, checktica.WithLimitMessage(s.LimitMessage))
	}
	return opts
}
