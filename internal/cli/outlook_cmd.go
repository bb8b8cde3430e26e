package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOutlookCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "outlook",
		Short: "Show market scenarios and the skills they boost",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Recommend.Outlook(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatOutlook(report))
			return nil
		},
	}
}
