package mcptools

import (
	"github.com/hannajonsd/code-audit/audit"
	"github.com/hannajonsd/code-audit/vulnscan"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewServer creates the MCP server with all four audit tools registered.
// The vulnerability database is supplied by the caller; nil selects the
// built-in table.
func NewServer(db vulnscan.Database) *server.MCPServer {
	s := server.NewMCPServer(
		"code-audit",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(
			"Code audit tools: static quality analysis, documentation "+
				"generation, dependency vulnerability scanning, and unit-test "+
				"skeleton generation for Python source. All tools are stateless; "+
				"pass full file content on every call.",
		),
	)

	auditor := audit.New()
	scanner := vulnscan.New(db)

	qualityTool := NewQualityTool(auditor)
	s.AddTool(qualityTool.Definition(), qualityTool.Handle)

	docsTool := NewDocsTool(auditor)
	s.AddTool(docsTool.Definition(), docsTool.Handle)

	scanTool := NewScanTool(scanner)
	s.AddTool(scanTool.Definition(), scanTool.Handle)

	testGenTool := NewTestGenTool(auditor)
	s.AddTool(testGenTool.Definition(), testGenTool.Handle)

	return s
}
