// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/output"
)

const maxAttemptsLimit = 10

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.APIURL != "" {
		if err := validateURL(cfg.APIURL); err != nil {
			errs = append(errs, fmt.Sprintf("api_url: %v", err))
		}
	}

	if cfg.Method != "" {
		if _, err := checktica.ParseMethod(cfg.Method); err != nil {
			errs = append(errs, fmt.Sprintf("method: invalid value %q (must be one of %s)", cfg.Method, methodNames()))
		}
	}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("timeout: invalid duration %q", cfg.Timeout))
		case d <= 0:
			errs = append(errs, fmt.Sprintf("timeout: must be positive, got %s", cfg.Timeout))
		}
	}

	if cfg.MaxAttempts != 0 && (cfg.MaxAttempts < 1 || cfg.MaxAttempts > maxAttemptsLimit) {
		errs = append(errs, fmt.Sprintf("max_attempts: must be between 1 and %d, got %d", maxAttemptsLimit, cfg.MaxAttempts))
	}

	if cfg.Threshold != nil {
		if t := *cfg.Threshold; math.IsNaN(t) || t < 0 || t > 1 {
			errs = append(errs, fmt.Sprintf("threshold: must be between 0.0 and 1.0, got %g", t))
		}
	}

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	for i, ext := range cfg.Extensions {
		if strings.TrimSpace(ext) == "" {
			errs = append(errs, fmt.Sprintf("extensions[%d]: must not be empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func methodNames() string {
	ms := checktica.Methods()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
