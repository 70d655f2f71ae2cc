package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDQMCPServer creates a new MCP server with all dq tools and
// resources registered. baseDir is where configuration, reports and run
// history live, normally the working directory.
func NewDQMCPServer(baseDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"dq",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, baseDir)
	registerResources(s, baseDir)

	return s
}
