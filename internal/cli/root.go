package cli

import (
	"github.com/alexanderramin/skillpath/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog     service.CatalogService
	Imports     service.ImportService
	Plans       service.PlanService
	Simulations service.SimulationService
	Studies     service.StudyService
	Recommend   service.RecommendService
	Status      service.StatusService
}

// NewRootCmd creates the top-level "skillpath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "skillpath",
		Short: "Skill acquisition planner under multi-dimensional budgets",
	}

	root.AddCommand(
		newSeedCmd(app),
		newImportCmd(app),
		newCatalogCmd(app),
		newPlanCmd(app),
		newSimulateCmd(app),
		newSequenceCmd(app),
		newPivotCmd(app),
		newSprintsCmd(app),
		newRecommendCmd(app),
		newOutlookCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
		newReviewCmd(app),
		newExploreCmd(app),
	)

	return root
}
