package app

import (
	"github.com/alexanderramin/skillpath/internal/domain"
)

// PlanRequest asks for an optimal selection under per-dimension budget
// limits. An empty Limits map falls back to the stored catalog's default
// budget. Goal, when set, must appear in the resulting plan.
type PlanRequest struct {
	Limits map[string]float64
	Goal   string
	Save   bool
	Label  string
}

func NewPlanRequest(limits map[string]float64) PlanRequest {
	return PlanRequest{Limits: limits}
}

// PlanSkillLine is one scheduled skill in acquisition order. ElapsedTime
// is the running time total after finishing this skill.
type PlanSkillLine struct {
	Position    int
	ID          string
	Name        string
	Value       float64
	Costs       map[string]float64
	ElapsedTime float64
}

// PlanResult is an optimal plan ready for rendering: the raw plan, its
// per-skill breakdown, and how much of each budget dimension it consumes.
type PlanResult struct {
	Plan        domain.Plan
	Budget      domain.Budget
	Goal        string
	Lines       []PlanSkillLine
	Utilization []DimensionUsage
	SavedRunID  string
}
