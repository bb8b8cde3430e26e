package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *App) *cobra.Command {
	var limitPairs, noisyDims []string
	var goal string
	var trials int
	var noise float64
	var seed int64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Stress-test the optimal plan against cost noise",
		RunE: func(cmd *cobra.Command, args []string) error {
			limits, err := parseLimits(limitPairs)
			if err != nil {
				return err
			}

			req := contract.NewSimulateRequest(limits)
			req.Goal = goal
			if cmd.Flags().Changed("trials") {
				req.Trials = trials
			}
			if cmd.Flags().Changed("noise") {
				req.Noise = noise
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = seed
			}
			if cmd.Flags().Changed("noisy-dim") {
				req.NoisyDims = noisyDims
			}

			report, err := app.Simulations.Robustness(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSimulation(report))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&limitPairs, "limit", nil, "Budget limit as dimension=capacity (repeatable)")
	cmd.Flags().StringVar(&goal, "goal", "", "Skill ID that must appear in the plan")
	cmd.Flags().IntVar(&trials, "trials", 0, "Number of Monte Carlo trials")
	cmd.Flags().Float64Var(&noise, "noise", 0, "Cost perturbation as a fraction (0.2 = ±20%)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible trials")
	cmd.Flags().StringArrayVar(&noisyDims, "noisy-dim", nil, "Restrict noise to these dimensions (repeatable)")

	return cmd
}
