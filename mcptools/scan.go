package mcptools

import (
	"context"

	"github.com/hannajonsd/code-audit/vulnscan"
	"github.com/mark3labs/mcp-go/mcp"
)

// ScanTool handles the scan_for_security_issues MCP tool.
type ScanTool struct {
	scanner *vulnscan.Scanner
}

// NewScanTool creates a ScanTool over the given scanner.
func NewScanTool(scanner *vulnscan.Scanner) *ScanTool {
	return &ScanTool{scanner: scanner}
}

// Definition returns the MCP tool definition for registration.
func (t *ScanTool) Definition() mcp.Tool {
	return mcp.NewTool("scan_for_security_issues",
		mcp.WithDescription(
			"Scan a dependency manifest (e.g. requirements.txt content) for "+
				"packages with known vulnerabilities. Lookup is against a fixed "+
				"table; packages not in the table are reported clean.",
		),
		mcp.WithString("dependencies",
			mcp.Required(),
			mcp.Description("The full content of the dependency file"),
		),
	)
}

// Handle processes the scan_for_security_issues tool call.
func (t *ScanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	manifest, ok := requireString(req, "dependencies")
	if !ok {
		return mcp.NewToolResultError("'dependencies' is required"), nil
	}

	return jsonResult(t.scanner.Scan(manifest))
}
