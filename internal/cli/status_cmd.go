package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a snapshot of the stored catalog and saved runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Status.Status(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatStatus(report))
			return nil
		},
	}
}
