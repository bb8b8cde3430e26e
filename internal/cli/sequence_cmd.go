package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/spf13/cobra"
)

func newSequenceCmd(app *App) *cobra.Command {
	var skills []string

	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Rank every ordering of a skill set by completion cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewSequenceRequest(skills...)

			report, err := app.Studies.SequenceStudy(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSequences(report))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Skill IDs to study (default: the critical set)")

	return cmd
}
