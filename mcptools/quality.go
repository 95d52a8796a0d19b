// Package mcptools exposes the audit operations as MCP tools so an
// LLM orchestrator can call them over stdio. Each tool wraps exactly one
// operation and returns its result as a JSON payload; operation-level
// failures (parse errors, unknown functions) ride inside the payload's
// status field rather than failing the tool call.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hannajonsd/code-audit/audit"
	"github.com/mark3labs/mcp-go/mcp"
)

// QualityTool handles the analyze_code_quality MCP tool.
type QualityTool struct {
	auditor *audit.Auditor
}

// NewQualityTool creates a QualityTool over the given auditor.
func NewQualityTool(auditor *audit.Auditor) *QualityTool {
	return &QualityTool{auditor: auditor}
}

// Definition returns the MCP tool definition for registration.
func (t *QualityTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_code_quality",
		mcp.WithDescription(
			"Perform static analysis on a Python file's content, reporting "+
				"cyclomatic complexity per function, missing docstrings, and "+
				"an overall complexity score.",
		),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("The full content of the file to analyze"),
		),
	)
}

// Handle processes the analyze_code_quality tool call.
func (t *QualityTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, ok := requireString(req, "source")
	if !ok {
		return mcp.NewToolResultError("'source' is required"), nil
	}

	return jsonResult(t.auditor.AnalyzeQuality(source))
}

// requireString fetches a required string argument. Empty strings are
// allowed only where the operation itself accepts empty input, so the
// caller decides; this reports presence, not emptiness.
func requireString(req mcp.CallToolRequest, key string) (string, bool) {
	args := req.GetArguments()
	if _, present := args[key]; !present {
		return "", false
	}
	return req.GetString(key, ""), true
}

// jsonResult renders an operation result as an indented JSON text payload.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
