// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/detector"
	"github.com/checktica/checktica-go/internal/output"
	"github.com/checktica/checktica-go/internal/scan"
)

// DetectInput is the input schema for the detect MCP tool.
type DetectInput struct {
	Text      string   `json:"text" jsonschema:"The text to classify"`
	Method    string   `json:"method,omitempty" jsonschema:"Detection method: most_accurate, more_accurate, balanced, fast, fastest (default: most_accurate)"`
	Threshold *float64 `json:"threshold,omitempty" jsonschema:"Confidence above which a generated verdict is flagged (0.0-1.0, default 0.65)"`
}

// DetectOutput is the JSON document returned by the detect tool.
type DetectOutput struct {
	IsLLMGenerated bool    `json:"is_llm_generated"`
	Confidence     float64 `json:"confidence"`
	Remarks        string  `json:"remarks"`
	Method         string  `json:"method"`
	Threshold      float64 `json:"threshold"`
	Flagged        bool    `json:"flagged"`
}

// ScanInput is the input schema for the scan MCP tool.
type ScanInput struct {
	Paths      string   `json:"paths" jsonschema:"Comma-separated files or directories to scan"`
	Method     string   `json:"method,omitempty" jsonschema:"Detection method (default: most_accurate)"`
	Threshold  *float64 `json:"threshold,omitempty" jsonschema:"Confidence above which a generated verdict is flagged (0.0-1.0, default 0.65)"`
	Extensions string   `json:"extensions,omitempty" jsonschema:"Comma-separated file extensions picked up in directories (default: .txt,.md)"`
	Format     string   `json:"format,omitempty" jsonschema:"Output format: json, markdown, text (default: json)"`
}

// MethodsInput is the (empty) input schema for the methods MCP tool.
type MethodsInput struct{}

// MethodInfo describes one detection method.
type MethodInfo struct {
	Name    string `json:"name"`
	Rank    int    `json:"rank"`
	Default bool   `json:"default"`
}

// tools holds the dependencies shared by the tool handlers.
type tools struct {
	detector detector.Detector
	logger   *slog.Logger
}

func boolPtr(b bool) *bool { return &b }

// registerTools adds all checktica tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Classify whether a piece of text was generated by a language model. Returns the verdict, confidence, remarks, and whether it crosses the flagging threshold.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "Classify every text file under the given paths, one request at a time. Stops early if the API rate limit is reached.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleScan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "methods",
		Description: "List the detection methods, from most accurate to fastest.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, t.handleMethods)
}

func (t *tools) handleDetect(ctx context.Context, _ *mcp.CallToolRequest, input DetectInput) (*mcp.CallToolResult, any, error) {
	method, err := parseMethod(input.Method)
	if err != nil {
		return nil, nil, err
	}
	threshold, err := resolveThreshold(input.Threshold)
	if err != nil {
		return nil, nil, err
	}

	res, err := t.detector.Detect(ctx, input.Text, method)
	if err != nil {
		t.logger.Warn("mcp detect failed", "method", method, "error", err)
		return nil, nil, err
	}

	out := DetectOutput{
		IsLLMGenerated: res.IsLLMGenerated,
		Confidence:     res.Confidence,
		Remarks:        res.Remarks,
		Method:         method.String(),
		Threshold:      threshold,
		Flagged:        res.Exceeds(threshold),
	}
	return jsonResult(out)
}

func (t *tools) handleScan(ctx context.Context, _ *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, any, error) {
	var paths []string
	for _, p := range splitAndTrim(input.Paths) {
		abs, err := ResolvePath(p)
		if err != nil {
			return nil, nil, err
		}
		paths = append(paths, abs)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("paths must name at least one file or directory")
	}

	method, err := parseMethod(input.Method)
	if err != nil {
		return nil, nil, err
	}
	threshold, err := resolveThreshold(input.Threshold)
	if err != nil {
		return nil, nil, err
	}

	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	s := scan.New(t.detector)
	s.Method = method
	s.Threshold = threshold
	s.Extensions = splitAndTrim(input.Extensions)
	s.Logger = t.logger

	inputs, err := s.Collect(ctx, paths)
	if err != nil {
		return nil, nil, fmt.Errorf("collecting inputs: %w", err)
	}
	report := s.Run(ctx, inputs)

	var buf bytes.Buffer
	if err := formatter.Format(report, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func (t *tools) handleMethods(_ context.Context, _ *mcp.CallToolRequest, _ MethodsInput) (*mcp.CallToolResult, any, error) {
	ms := checktica.Methods()
	infos := make([]MethodInfo, len(ms))
	for i, m := range ms {
		infos[i] = MethodInfo{Name: m.String(), Rank: i + 1, Default: m == checktica.DefaultMethod}
	}
	return jsonResult(infos)
}

// parseMethod treats an empty method as the default.
func parseMethod(s string) (checktica.Method, error) {
	if s == "" {
		return checktica.DefaultMethod, nil
	}
	return checktica.ParseMethod(s)
}

func resolveThreshold(t *float64) (float64, error) {
	if t == nil {
		return scan.DefaultThreshold, nil
	}
	if *t < 0 || *t > 1 {
		return 0, fmt.Errorf("threshold must be between 0.0 and 1.0, got %g", *t)
	}
	return *t, nil
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func textResult(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: s},
		},
	}
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
