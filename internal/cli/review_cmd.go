package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/spf13/cobra"
)

// reviewSequenceSkills caps the permutation study inside a review run.
// 5! orderings keep the consolidated report fast.
const reviewSequenceSkills = 5

func newReviewCmd(app *App) *cobra.Command {
	var limitPairs []string
	var goal string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Run the full analysis suite as one consolidated report",
		RunE: func(cmd *cobra.Command, args []string) error {
			limits, err := parseLimits(limitPairs)
			if err != nil {
				return err
			}
			return runReview(app, cmd.OutOrStdout(), limits, goal)
		},
	}

	cmd.Flags().StringArrayVar(&limitPairs, "limit", nil, "Budget limit as dimension=capacity (repeatable)")
	cmd.Flags().StringVar(&goal, "goal", "", "Skill ID that must appear in the plan")

	return cmd
}

func runReview(app *App, out io.Writer, limits map[string]float64, goal string) error {
	ctx := context.Background()

	validation, err := app.Catalog.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}
	if validation.SkillCount == 0 {
		fmt.Fprintln(out, "Nothing to review yet. Run `skillpath seed` to load the example catalog.")
		return nil
	}
	fmt.Fprintf(out, "%s\n\n", formatter.FormatValidation(validation))

	planReq := contract.NewPlanRequest(limits)
	planReq.Goal = goal
	plan, err := app.Plans.Optimize(ctx, planReq)
	if err != nil {
		return fmt.Errorf("planning: %w", err)
	}
	fmt.Fprintf(out, "%s\n\n", formatter.FormatPlan(plan))

	stop := formatter.StartSpinner("Running Monte Carlo trials...")
	simReq := contract.NewSimulateRequest(limits)
	simReq.Goal = goal
	simulation, err := app.Simulations.Robustness(ctx, simReq)
	stop()
	if err != nil {
		return fmt.Errorf("simulating: %w", err)
	}
	fmt.Fprintf(out, "%s\n\n", formatter.FormatSimulation(simulation))

	// Permute the head of the optimal sequence rather than the full plan.
	ids := plan.Plan.Sequence
	if len(ids) > reviewSequenceSkills {
		ids = ids[:reviewSequenceSkills]
	}
	if len(ids) > 1 {
		sequences, err := app.Studies.SequenceStudy(ctx, contract.NewSequenceRequest(ids...))
		if err != nil {
			return fmt.Errorf("studying sequences: %w", err)
		}
		fmt.Fprintf(out, "%s\n\n", formatter.FormatSequences(sequences))
	}

	pivots, err := app.Studies.PivotStudy(ctx, contract.NewPivotRequest())
	if err != nil {
		return fmt.Errorf("studying pivots: %w", err)
	}
	fmt.Fprintf(out, "%s\n\n", formatter.FormatPivots(pivots))

	sprints, err := app.Studies.SprintPartition(ctx, contract.NewSprintRequest())
	if err != nil {
		return fmt.Errorf("partitioning sprints: %w", err)
	}
	fmt.Fprintf(out, "%s\n\n", formatter.FormatSprints(sprints))

	comparisons, err := app.Recommend.CompareProfiles(ctx)
	if err != nil {
		return fmt.Errorf("comparing profiles: %w", err)
	}
	fmt.Fprintf(out, "%s\n", formatter.FormatProfileComparisons(comparisons))

	return nil
}
