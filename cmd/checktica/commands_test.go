// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionDefault(t *testing.T) {
	assert.Equal(t, "dev", Version)
}

func TestVersionCmd(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "checktica dev\n", out)
}

func TestMethodsCmd(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "methods")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"most_accurate (default)",
		"more_accurate",
		"balanced",
		"fast",
		"fastest",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"detect", "scan", "methods", "config", "mcp", "version"} {
		assert.True(t, names[want], "%s should be registered on rootCmd", want)
	}
}

func TestRootCmd_InvalidLogFormat(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "--log-format", "xml", "version")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
}

func TestMCPServeCmd_IsRegistered(t *testing.T) {
	found := false
	for _, cmd := range mcpCmd.Commands() {
		if cmd.Use == "serve" {
			found = true
			break
		}
	}
	assert.True(t, found, "serve command should be registered on mcpCmd")
}

func TestMCPServeCmd_RejectsArgs(t *testing.T) {
	assert.Error(t, mcpServeCmd.Args(mcpServeCmd, []string{"extra"}))
}
