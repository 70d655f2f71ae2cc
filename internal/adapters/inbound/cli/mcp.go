package cli

import (
	mcpadapter "github.com/Tac0Dude/data-quality-cli/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the dq MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start dq MCP server (stdio)",
		Long:  "Start the dq MCP server using stdio transport. This allows AI assistants to\nrun validations, migrate suites and read run history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseDir == "" {
				baseDir = "."
			}
			s := mcpadapter.NewDQMCPServer(baseDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&baseDir, "path", "", "Base directory for config, reports and history (defaults to current working directory)")

	return cmd
}
