package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = ".dq.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .dq.yaml configuration file",
		Long:  "Create a .dq.yaml with the default settings spelled out, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .dq.yaml")

	return cmd
}

func generateConfig() string {
	cfg := domain.DefaultConfig()

	result := fmt.Sprintf(`# dq configuration

# Directory where validation reports are written.
reports_dir: %s

# Directory where generated HTML docs pages are written.
docs_dir: %s

# Engine diagnostics: debug, info, warn, error.
log_level: %s
`, cfg.ReportsDir, cfg.DocsDir, cfg.LogLevel)

	result += `
# Require a literal .csv extension on file data refs.
# strict_csv: true

# Tokens treated as missing values during CSV ingestion.
# null_values:
#   - ""
#   - "NA"
#   - "N/A"
#   - "null"
`

	return result
}
