package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	var profile, method string
	var skills []string
	var years int
	var compare bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend what to learn next for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if compare {
				comparisons, err := app.Recommend.CompareProfiles(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatProfileComparisons(comparisons))
				return nil
			}

			req := contract.NewRecommendRequest()
			req.Profile = profile
			req.Skills = skills
			if cmd.Flags().Changed("method") {
				req.Method = method
			}
			if cmd.Flags().Changed("years") {
				req.Years = years
			}

			report, err := app.Recommend.ForProfile(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatRecommendation(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Stored learner profile name")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Acquired skill IDs for an ad hoc profile")
	cmd.Flags().StringVar(&method, "method", "auto", "Planning method (auto|horizon|lookahead)")
	cmd.Flags().IntVar(&years, "years", 0, "Planning horizon in years")
	cmd.Flags().BoolVar(&compare, "compare", false, "Compare recommendations across every stored profile")

	return cmd
}
