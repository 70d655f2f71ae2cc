package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/config"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/engine"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/gitinfo"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/report"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/suitefile"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/tabular"
	"github.com/Tac0Dude/data-quality-cli/internal/application"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/Tac0Dude/data-quality-cli/internal/domain/expectations"
)

// registerTools registers all dq MCP tools on the given server.
func registerTools(s *server.MCPServer, baseDir string) {
	// 1. dq_validate
	s.AddTool(
		mcplib.NewTool("dq_validate",
			mcplib.WithDescription("Validate a batch of data against an expectation suite. Returns the full validation result as JSON; a failed expectation is part of the result, not an error."),
			mcplib.WithString("data",
				mcplib.Required(),
				mcplib.Description("CSV path or Postgres URL of the data to validate"),
			),
			mcplib.WithString("suite",
				mcplib.Required(),
				mcplib.Description("Path to the expectation suite JSON document"),
			),
			mcplib.WithBoolean("strict_csv",
				mcplib.Description("Require a .csv extension on file data refs"),
			),
		),
		handleValidate(baseDir),
	)

	// 2. dq_list_expectation_types
	s.AddTool(
		mcplib.NewTool("dq_list_expectation_types",
			mcplib.WithDescription("Returns the expectation types this engine can evaluate, sorted by name"),
		),
		handleListExpectationTypes(),
	)

	// 3. dq_migrate_suite
	s.AddTool(
		mcplib.NewTool("dq_migrate_suite",
			mcplib.WithDescription("Migrate a legacy v0.x suite document to the current schema. Takes the raw JSON text and returns the migrated document."),
			mcplib.WithString("document",
				mcplib.Required(),
				mcplib.Description("Raw JSON text of the suite document"),
			),
		),
		handleMigrateSuite(),
	)
}

func handleValidate(baseDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dataRef, err := request.RequireString("data")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		suitePath, err := request.RequireString("suite")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		strictCSV, _ := request.GetArguments()["strict_csv"].(bool)

		cfg, err := config.New().Load(baseDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewValidateService(
			suitefile.New(),
			tabular.New(tabular.Options{NullValues: cfg.NullValues}),
			engine.New(nil),
			report.New(baseDir, cfg.ReportsDir),
			gitinfo.New(),
			nil,
		)
		outcome, err := svc.Run(ctx, application.ValidateRequest{
			DataRef:   dataRef,
			SuitePath: suitePath,
			StrictCSV: strictCSV || cfg.StrictCSV,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(outcome.Result)
	}
}

func handleListExpectationTypes() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(expectations.Types())
	}
}

func handleMigrateSuite() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		document, err := request.RequireString("document")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var doc map[string]any
		dec := json.NewDecoder(bytes.NewReader([]byte(document)))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return errorResult(fmt.Sprintf("parsing suite document: %v", err)), nil
		}

		return jsonResult(domain.MigrateSuiteDocument(doc))
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
