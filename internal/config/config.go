// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

// Package config handles .checktica.yaml configuration files.
package config

// Config represents the contents of a .checktica.yaml (or .checktica.toml)
// file. Unset fields fall through to the next layer: CLI flags win over the
// environment, the environment over the repo file, the repo file over the
// global file.
type Config struct {
	APIURL       string   `yaml:"api_url,omitempty" toml:"api_url,omitempty"`
	Method       string   `yaml:"method,omitempty" toml:"method,omitempty"`
	Timeout      string   `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
	MaxAttempts  int      `yaml:"max_attempts,omitempty" toml:"max_attempts,omitempty"`
	Threshold    *float64 `yaml:"threshold,omitempty" toml:"threshold,omitempty"`
	OutputFormat string   `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
	LimitMessage string   `yaml:"limit_message,omitempty" toml:"limit_message,omitempty"`
	Extensions   []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

const (
	// FileName is the expected config file name in the working directory.
	FileName = ".checktica.yaml"

	// TOMLFileName is read when FileName is absent.
	TOMLFileName = ".checktica.toml"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvAPIURL = "CHECKTICA_API_URL"
	EnvMethod = "CHECKTICA_METHOD"
)
