package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients.
var Version = "0.1.0"

// NewAssetKraftMCPServer creates a new MCP server with all assetkraft tools and
// resources registered against sess.
func NewAssetKraftMCPServer(sess *Session) *server.MCPServer {
	s := server.NewMCPServer(
		"assetkraft",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, sess)
	registerResources(s, sess)

	return s
}
