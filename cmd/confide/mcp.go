package main

import (
	"github.com/spf13/cobra"
	"github.com/unowned-ai/confide/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the confide MCP server (stdio)",
	Long: `Start a Model Context Protocol (MCP) server that exposes the diary, the
response style and the daily quote as MCP tools via STDIO.

The --db flag is optional. If not provided, a system-specific default location will be used:
- Windows: %USERPROFILE%\AppData\Roaming\confide
- macOS: ~/Library/Application Support/confide
- Linux: ~/.local/share/confide

Example:
  confide mcp
  confide mcp --db ~/diary --store diskv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		// Logs go to stderr so the JSON-RPC stream on stdout stays clean.
		s.logger.Info().Str("data", s.cfg.DataPath).Str("store", s.cfg.Store).Msg("confide MCP server started")
		return mcp.NewConfideMCPServer(s.orch, s.logger).Start()
	},
}
