package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/spf13/cobra"
)

func newSprintsCmd(app *App) *cobra.Command {
	var criterion string
	var size int

	cmd := &cobra.Command{
		Use:   "sprints",
		Short: "Sort the catalog and split it into two study sprints",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewSprintRequest()
			if cmd.Flags().Changed("criterion") {
				req.Criterion = criterion
			}
			if cmd.Flags().Changed("size") {
				req.Size = size
			}

			report, err := app.Studies.SprintPartition(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSprints(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&criterion, "criterion", "complexity", "Sort criterion (complexity|time|value|ratio)")
	cmd.Flags().IntVar(&size, "size", 0, "Skills in the first sprint (default half the catalog)")

	return cmd
}
