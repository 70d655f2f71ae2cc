package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/config"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/tui"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/Tac0Dude/data-quality-cli/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

// Shared across commands, initialized by the root PersistentPreRunE.
var (
	logger = logging.Nop()
	cfg    = domain.DefaultConfig()
)

// errValidationFailed signals a negative verdict: the tool worked, the
// data did not. It maps to its own exit code, distinct from errors.
var errValidationFailed = errors.New("validation failed")

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "dq",
		Short:         "Validate tabular data against expectation suites",
		Long:          "dq runs JSON expectation suites against CSV files or Postgres tables,\nwrites a machine-readable report and exits by verdict.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.New().Load(".")
			if err != nil {
				return domain.NewError(domain.KindEngineExecution, err)
			}
			cfg = loaded

			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			logger, err = logging.New(level)
			if err != nil {
				return domain.NewError(domain.KindEngineExecution, err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newSuiteCmd())
	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and maps its outcome onto the exit-code
// contract: 0 all rules passed, 1 data-quality failure, 2 anything
// that stopped a verdict.
func Execute() int {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
		return domain.ExitPassed
	case errors.Is(err, errValidationFailed):
		return domain.ExitFailed
	default:
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		return domain.ExitError
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show dq version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dq %s (%s)\n", version, commit)
			return nil
		},
	}
}
