// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/checktica/checktica-go/internal/config"
	"github.com/checktica/checktica-go/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running checktica as an MCP server, exposing detection tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing checktica's tools:
  - detect:  Classify a single text
  - scan:    Classify text files under the given paths
  - methods: List detection methods

The API URL, timeout and retry settings come from the config files and the
environment, as for the other commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fileCfg, err := config.LoadLayered(".")
		if err != nil {
			return exitError(ExitInvalidArgs, "checktica: loading config: %v", err)
		}
		if err := config.Validate(fileCfg); err != nil {
			return exitError(ExitInvalidArgs, "checktica: %v", err)
		}
		d, err := newDetector(config.Merge(fileCfg, config.Settings{}))
		if err != nil {
			return exitError(ExitInvalidArgs, "%v", err)
		}
		return mcpserver.Run(cmd.Context(), Version, d, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
