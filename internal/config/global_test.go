// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigDir_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "checktica"), GlobalConfigDir())
}

func TestGlobalConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/checktica", GlobalConfigDir())
	assert.Equal(t, "/custom/config/checktica/config.yaml", GlobalConfigPath())
}

func TestLoadGlobal_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func writeGlobal(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, "checktica")
	require.NoError(t, os.MkdirAll(cfgDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o600))
}

func TestLoadGlobal_Valid(t *testing.T) {
	writeGlobal(t, "output_format: json\nmax_attempts: 2\n")

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 2, cfg.MaxAttempts)
}

func TestLoadGlobal_Invalid(t *testing.T) {
	writeGlobal(t, "{{bad")

	_, err := LoadGlobal()
	assert.Error(t, err)
}

func TestLoadLayered(t *testing.T) {
	writeGlobal(t, "output_format: json\nmethod: fast\nmax_attempts: 2\n")
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvMethod, "fastest")

	dir := t.TempDir()
	writeConfig(t, dir, FileName, "max_attempts: 4\nthreshold: 0.9\n")

	cfg, err := LoadLayered(dir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat, "global value survives")
	assert.Equal(t, 4, cfg.MaxAttempts, "repo beats global")
	assert.Equal(t, "fastest", cfg.Method, "environment beats both")
	require.NotNil(t, cfg.Threshold)
	assert.InDelta(t, 0.9, *cfg.Threshold, 0.001)
}

func TestLoadLayered_RepoError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, dir, FileName, "{{bad")

	_, err := LoadLayered(dir)
	assert.Error(t, err)
}
