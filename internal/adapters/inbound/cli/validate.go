package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/docs"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/engine"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/gitinfo"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/report"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/suitefile"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/tabular"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/tui"
	"github.com/Tac0Dude/data-quality-cli/internal/application"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		suitePath string
		outPath   string
		htmlDocs  bool
		strictCSV bool
		table     string
		query     string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "validate <data>",
		Short: "Validate a batch of data against an expectation suite",
		Long:  "Run every rule of an expectation suite against a CSV file or Postgres table,\nwrite a JSON report and exit by verdict: 0 passed, 1 failed, 2 error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataRef := args[0]

			svc := application.NewValidateService(
				suitefile.New(),
				tabular.New(tabular.Options{
					NullValues: cfg.NullValues,
					Table:      table,
					Query:      query,
				}),
				engine.New(logger),
				report.New(".", cfg.ReportsDir),
				gitinfo.New(),
				logger,
			)
			req := application.ValidateRequest{
				DataRef:   dataRef,
				SuitePath: suitePath,
				OutPath:   outPath,
				StrictCSV: strictCSV || cfg.StrictCSV,
			}

			out := cmd.OutOrStdout()
			if !jsonOut {
				fmt.Fprint(out, tui.RenderRunHeader(dataRef, suitePath))
			}

			var (
				outcome *application.RunOutcome
				runErr  error
			)
			run := func() {
				outcome, runErr = svc.Run(cmd.Context(), req)
			}
			if !jsonOut && isatty.IsTerminal(os.Stdout.Fd()) {
				_ = spinner.New().Title("Calculating metrics...").Action(run).Run()
			} else {
				run()
			}
			if runErr != nil {
				return runErr
			}

			result := outcome.Result
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, tui.RenderResult(result))
				fmt.Fprint(out, tui.RenderReportSaved(outcome.ReportPath))
			}

			if htmlDocs {
				buildDocsPage(cmd, result)
			}

			if !result.Success {
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&suitePath, "suite", "s", "", "Path to the expectation suite JSON (required)")
	_ = cmd.MarkFlagRequired("suite")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Report path (default <reports_dir>/result_<timestamp>.json)")
	cmd.Flags().BoolVar(&htmlDocs, "html", false, "Render an HTML page for the run and open it")
	cmd.Flags().BoolVar(&strictCSV, "strict-csv", false, "Require a .csv extension on file data refs")
	cmd.Flags().StringVar(&table, "table", "", "Postgres table to validate (database refs only)")
	cmd.Flags().StringVar(&query, "query", "", "SQL query to validate (database refs only)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Write the raw result JSON to stdout")

	return cmd
}

// buildDocsPage renders and opens the HTML page for a run. Failures are
// logged and swallowed; docs never change the verdict. The browser only
// launches on interactive terminals.
func buildDocsPage(cmd *cobra.Command, result *domain.ValidationResult) {
	page, err := docs.New().Build(result, cfg.DocsDir)
	if err != nil {
		logger.Warn("building docs page", zap.Error(err))
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderDocsSaved(page))
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return
	}
	if err := docs.OpenInBrowser(page); err != nil {
		logger.Debug("opening docs page", zap.Error(err))
	}
}
