package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Browse the catalog in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			program := tea.NewProgram(newExplorer(app), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}
