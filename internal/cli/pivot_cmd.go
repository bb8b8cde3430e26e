package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/spf13/cobra"
)

func newPivotCmd(app *App) *cobra.Command {
	var targets []float64
	var criterion string

	cmd := &cobra.Command{
		Use:   "pivot",
		Short: "Compare greedy strategies against the optimum at value targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPivotRequest(targets...)
			if cmd.Flags().Changed("criterion") {
				req.Criterion = criterion
			}

			report, err := app.Studies.PivotStudy(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatPivots(report))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&targets, "target", nil, "Value target to reach (repeatable; default catalog targets)")
	cmd.Flags().StringVar(&criterion, "criterion", "ratio", "Headline greedy criterion (ratio|value|time)")

	return cmd
}
