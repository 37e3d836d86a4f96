package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that lets agents inspect the portfolio: the
// ordered images, the named subsets, slot bindings and section content.
type Server struct {
	library *assets.Library
	content *content.Content
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over lib and c.
func NewServer(lib *assets.Library, c *content.Content) *Server {
	s := &Server{
		library: lib,
		content: c,
	}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listImagesTool, s.handleListImages)
	s.mcp.AddTool(getSubsetTool, s.handleGetSubset)
	s.mcp.AddTool(resolveSlotTool, s.handleResolveSlot)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
