package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [RUN_ID]",
		Short: "List saved plan runs, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				run, err := app.Plans.Run(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatRunDetail(run))
				return nil
			}

			runs, err := app.Plans.History(ctx, limit)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatHistory(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum runs to list (default 10)")

	return cmd
}
