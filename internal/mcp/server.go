package mcp

import (
	"context"
	"log"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kwscan/kwscan-mcp/internal/search"
)

const (
	// ServerName is the MCP server name.
	ServerName = "kwscan-mcp"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies.
type Server struct {
	mcp    *server.MCPServer
	fs     billy.Filesystem
	engine *search.Engine
}

// NewServer creates a new MCP server instance over the host filesystem.
// Logging goes to logger (stderr in practice: stdout carries the protocol).
func NewServer(logger *log.Logger) *Server {
	fsys := osfs.New("/")
	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		fs:     fsys,
		engine: search.New(fsys, logger),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchKeywordsTool(), s.handleSearchKeywords)
	s.mcp.AddTool(collectFilesTool(), s.handleCollectFiles)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
