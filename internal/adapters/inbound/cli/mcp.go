package cli

import (
	mcpadapter "github.com/depguard/depguard/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the depguard MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var repoRoot string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start depguard MCP server (stdio)",
		Long:  "Start the depguard MCP server using stdio transport. This lets AI coding assistants run dependency policy checks and query check documentation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoRoot == "" {
				repoRoot = "."
			}
			s := mcpadapter.NewDepguardMCPServer(repoRoot, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&repoRoot, "path", "", "Repository root (defaults to current working directory)")

	return cmd
}
