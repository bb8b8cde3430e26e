package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the skill catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
		newCatalogValidateCmd(app),
		newCatalogStatsCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all skills in topological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalog.List(context.Background())
			if err != nil {
				return err
			}

			if len(result.Skills) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty. Run `skillpath seed` or `skillpath import <file>`.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatCatalog(result))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one skill in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Catalog.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSkill(view))
			return nil
		},
	}
}

func newCatalogValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check catalog invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Catalog.Validate(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatValidation(report))
			if !report.Valid {
				return fmt.Errorf("catalog has %d validation issues", len(report.Issues))
			}
			return nil
		},
	}
}

func newCatalogStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate catalog statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Catalog.Stats(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatStats(stats))
			return nil
		},
	}
}
