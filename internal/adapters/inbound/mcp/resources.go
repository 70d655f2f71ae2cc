package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/config"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/report"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// registerResources registers all dq MCP resources on the given server.
func registerResources(s *server.MCPServer, baseDir string) {
	// 1. dq://history - recorded validation runs
	s.AddResource(
		mcplib.NewResource(
			"dq://history",
			"Run History",
			mcplib.WithResourceDescription("Recorded validation runs, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(baseDir),
	)
}

func handleHistoryResource(baseDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(baseDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		records, err := report.New(baseDir, cfg.ReportsDir).History()
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if records == nil {
			// An empty history reads as [], not null.
			records = []domain.RunRecord{}
		}

		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "dq://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
