package app

import (
	"github.com/alexanderramin/skillpath/internal/domain"
)

// StatusReport is the workspace overview: what is stored and whether it
// is usable.
type StatusReport struct {
	SkillCount    int
	BasicCount    int
	CriticalCount int
	Dimensions    []string
	CatalogValid  bool
	Issues        []string
	ScenarioCount int
	ProfileCount  int
	RunCount      int
	LastRun       *domain.PlanRun
}
