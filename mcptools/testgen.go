package mcptools

import (
	"context"

	"github.com/hannajonsd/code-audit/audit"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestGenTool handles the create_qa_tests MCP tool.
type TestGenTool struct {
	auditor *audit.Auditor
}

// NewTestGenTool creates a TestGenTool over the given auditor.
func NewTestGenTool(auditor *audit.Auditor) *TestGenTool {
	return &TestGenTool{auditor: auditor}
}

// Definition returns the MCP tool definition for registration.
func (t *TestGenTool) Definition() mcp.Tool {
	return mcp.NewTool("create_qa_tests",
		mcp.WithDescription(
			"Generate a unittest skeleton for a named function in a Python "+
				"file, with the function's parameter list embedded in the "+
				"nominal-case placeholder.",
		),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("The full content of the code file"),
		),
		mcp.WithString("function_name",
			mcp.Required(),
			mcp.Description("Exact name of the function to generate tests for"),
		),
	)
}

// Handle processes the create_qa_tests tool call.
func (t *TestGenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, ok := requireString(req, "source")
	if !ok {
		return mcp.NewToolResultError("'source' is required"), nil
	}

	functionName, ok := requireString(req, "function_name")
	if !ok || functionName == "" {
		return mcp.NewToolResultError("'function_name' is required"), nil
	}

	return jsonResult(t.auditor.GenerateTestSkeleton(source, functionName))
}
