// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes Checktica detection as tools over stdio transport.
package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/checktica/checktica-go/internal/detector"
)

// New creates a new MCP server with checktica's tools registered. Detection
// requests are forwarded to d.
func New(version string, d detector.Detector) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "checktica",
		Title:   "Checktica AI Text Detection",
		Version: version,
	}, nil)

	registerTools(server, &tools{detector: d, logger: slog.Default()})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, d detector.Detector, transport mcp.Transport) error {
	server := New(version, d)
	return server.Run(ctx, transport)
}
