package mcptools

import (
	"context"

	"github.com/hannajonsd/code-audit/audit"
	"github.com/mark3labs/mcp-go/mcp"
)

// DocsTool handles the generate_documentation MCP tool.
type DocsTool struct {
	auditor *audit.Auditor
}

// NewDocsTool creates a DocsTool over the given auditor.
func NewDocsTool(auditor *audit.Auditor) *DocsTool {
	return &DocsTool{auditor: auditor}
}

// Definition returns the MCP tool definition for registration.
func (t *DocsTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_documentation",
		mcp.WithDescription(
			"Generate markdown documentation for a Python file, listing its "+
				"classes and functions with their docstrings. A file that fails "+
				"to parse still yields a document whose body is the parse error.",
		),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("The full content of the code file"),
		),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path or label for the file, embedded in the document title"),
		),
	)
}

// Handle processes the generate_documentation tool call.
func (t *DocsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, ok := requireString(req, "source")
	if !ok {
		return mcp.NewToolResultError("'source' is required"), nil
	}

	filePath, ok := requireString(req, "file_path")
	if !ok {
		return mcp.NewToolResultError("'file_path' is required"), nil
	}

	return jsonResult(t.auditor.GenerateDocumentation(source, filePath))
}
