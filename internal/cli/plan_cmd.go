package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/spf13/cobra"
)

// parseLimits turns repeated "dimension=capacity" flag values into a budget
// map. Capacities must parse as positive numbers.
func parseLimits(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	limits := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		dim, raw, ok := strings.Cut(pair, "=")
		dim = strings.TrimSpace(dim)
		if !ok || dim == "" {
			return nil, &contract.RequestError{
				Code:    contract.ErrInvalidLimit,
				Message: fmt.Sprintf("limit %q must look like dimension=capacity", pair),
			}
		}
		capacity, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || capacity <= 0 {
			return nil, &contract.RequestError{
				Code:    contract.ErrInvalidLimit,
				Message: fmt.Sprintf("limit %q needs a positive capacity", pair),
			}
		}
		limits[dim] = capacity
	}
	return limits, nil
}

func newPlanCmd(app *App) *cobra.Command {
	var limitPairs []string
	var goal, label string
	var save, wizard bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the optimal skill plan under budget limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			limits, err := parseLimits(limitPairs)
			if err != nil {
				return err
			}

			req := contract.NewPlanRequest(limits)
			req.Goal = goal
			req.Save = save
			req.Label = label

			if wizard {
				if err := runPlanWizard(ctx, app, &req); err != nil {
					return err
				}
			}
			if req.Label != "" {
				req.Save = true
			}

			result, err := app.Plans.Optimize(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatPlan(result))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&limitPairs, "limit", nil, "Budget limit as dimension=capacity (repeatable)")
	cmd.Flags().StringVar(&goal, "goal", "", "Skill ID that must appear in the plan")
	cmd.Flags().BoolVar(&save, "save", false, "Record the plan as a run")
	cmd.Flags().StringVar(&label, "label", "", "Label for the saved run (implies --save)")
	cmd.Flags().BoolVar(&wizard, "wizard", false, "Build the request interactively")

	return cmd
}
