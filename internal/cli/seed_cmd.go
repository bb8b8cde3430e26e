package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in example catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalog.Seed(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d skills, %d scenarios, %d profiles.\n",
				result.Skills, result.Scenarios, result.Profiles)
			return nil
		},
	}
}
