package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	confide "github.com/unowned-ai/confide/pkg"
	"github.com/unowned-ai/confide/pkg/orchestrator"
)

// ConfideMCPServer exposes one diary session as MCP tools over stdio.
type ConfideMCPServer struct {
	mcpServer *server.MCPServer
	orch      *orchestrator.Orchestrator
	logger    zerolog.Logger
}

// NewConfideMCPServer builds the MCP server and registers every diary tool.
func NewConfideMCPServer(orch *orchestrator.Orchestrator, logger zerolog.Logger) *ConfideMCPServer {
	s := server.NewMCPServer(
		"Confide MCP Server",
		confide.Version,
		server.WithLogging(),
		server.WithRecovery(),
	)

	RegisterPingTool(s)
	RegisterCatalogTools(s)
	RegisterEntryTools(s, orch)
	RegisterStyleTools(s, orch.Store())
	RegisterQuoteTools(s, orch)

	return &ConfideMCPServer{
		mcpServer: s,
		orch:      orch,
		logger:    logger,
	}
}

// Start runs the stdio event loop. It blocks until stdin closes.
func (s *ConfideMCPServer) Start() error {
	s.logger.Info().Str("tools", ToolNames).Msg("listening for MCP JSON-RPC on stdin/stdout")
	return server.ServeStdio(s.mcpServer)
}

// MCPRawServer exposes the raw mcp-go server.
func (s *ConfideMCPServer) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}
