package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/report"
	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/tui"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recorded validation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := report.New(".", cfg.ReportsDir).History()
			if err != nil {
				return domain.NewError(domain.KindEngineExecution, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(records))
			return nil
		},
	}
}
