package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/suitefile"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/tabular"
	"github.com/Tac0Dude/data-quality-cli/internal/application"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

func newSuiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Create and migrate expectation suites",
		Long:  "Commands for working with expectation suite documents: draft a starter\nsuite from observed data, or migrate legacy v0.x documents to the v1.x schema.",
	}
	cmd.AddCommand(newSuiteMigrateCmd())
	cmd.AddCommand(newSuiteNewCmd())
	return cmd
}

func newSuiteMigrateCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "migrate <suite.json>",
		Short: "Migrate a legacy suite document to the current schema",
		Long:  "Rename expectation_suite_name to name and per-rule expectation_type to type.\nDocuments already in the current schema pass through unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := suitefile.ReadDocument(args[0])
			if err != nil {
				return err
			}
			migrated := domain.MigrateSuiteDocument(doc)

			if outPath == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(migrated)
			}
			if err := suitefile.WriteDocument(migrated, outPath); err != nil {
				return domain.NewError(domain.KindEngineExecution, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated suite written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the migrated document here instead of stdout")

	return cmd
}

func newSuiteNewCmd() *cobra.Command {
	var (
		outPath string
		name    string
	)

	cmd := &cobra.Command{
		Use:   "new <data>",
		Short: "Draft a starter suite from observed data",
		Long:  "Profile a CSV file or Postgres table and generate a suite of rules the data\nalready satisfies. The draft is a starting point; review it before use.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewSuiteBuilderService(
				tabular.New(tabular.Options{NullValues: cfg.NullValues}),
				logger,
			)
			suite, err := svc.Build(cmd.Context(), application.BuildSuiteRequest{
				DataRef: args[0],
				Name:    name,
			})
			if err != nil {
				return err
			}

			if outPath == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(suite)
			}
			data, err := json.MarshalIndent(suite, "", "  ")
			if err != nil {
				return domain.NewError(domain.KindEngineExecution, err)
			}
			if dir := filepath.Dir(outPath); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return domain.NewError(domain.KindEngineExecution, err)
				}
			}
			if err := os.WriteFile(outPath, append(data, '\n'), 0644); err != nil {
				return domain.NewError(domain.KindEngineExecution, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Suite %s written to %s (%d rules)\n",
				suite.Name, outPath, len(suite.Expectations))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the drafted suite here instead of stdout")
	cmd.Flags().StringVar(&name, "name", "", "Suite name (default derived from the data ref)")

	return cmd
}
