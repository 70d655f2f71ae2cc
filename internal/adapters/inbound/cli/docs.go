package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/docs"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/tui"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

func newDocsCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "docs <report.json>",
		Short: "Render the HTML page for a saved report",
		Long:  "Rebuild the self-contained HTML page from a validation report written by\ndq validate, without re-running the suite.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if errors.Is(err, fs.ErrNotExist) {
				return domain.Errorf(domain.KindInputNotFound, "report file not found: %s", args[0])
			}
			if err != nil {
				return domain.NewError(domain.KindEngineExecution, err)
			}

			var result domain.ValidationResult
			if err := json.Unmarshal(raw, &result); err != nil {
				return domain.Errorf(domain.KindEngineExecution, "parsing report %s: %v", args[0], err)
			}

			page, err := docs.New().Build(&result, cfg.DocsDir)
			if err != nil {
				return domain.NewError(domain.KindEngineExecution, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDocsSaved(page))

			if open {
				if err := docs.OpenInBrowser(page); err != nil {
					return domain.Errorf(domain.KindEngineExecution, "opening docs page: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the rendered page in a browser")

	return cmd
}
