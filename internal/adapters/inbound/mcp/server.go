package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDepguardMCPServer creates a new MCP server with all depguard tools
// registered. repoRoot is the workspace the tools operate on.
func NewDepguardMCPServer(repoRoot, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"depguard",
		version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, repoRoot, version)

	return s
}
