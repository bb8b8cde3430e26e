package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Skill options
type SkillOption func(*domain.Skill)

func WithValue(v float64) SkillOption {
	return func(s *domain.Skill) {
		s.Value = v
	}
}

func WithCost(dimension string, amount float64) SkillOption {
	return func(s *domain.Skill) {
		if s.Costs == nil {
			s.Costs = map[string]float64{}
		}
		s.Costs[dimension] = amount
	}
}

func WithCosts(costs map[string]float64) SkillOption {
	return func(s *domain.Skill) {
		s.Costs = costs
	}
}

func WithPrereqs(ids ...string) SkillOption {
	return func(s *domain.Skill) {
		s.Prereqs = ids
	}
}

func WithDemand(d float64) SkillOption {
	return func(s *domain.Skill) {
		s.Demand = d
	}
}

func WithCritical() SkillOption {
	return func(s *domain.Skill) {
		s.Critical = true
	}
}

func WithName(name string) SkillOption {
	return func(s *domain.Skill) {
		s.Name = name
	}
}

// NewTestSkill builds a skill with a single time-dimension cost and a
// neutral demand. Options override any default.
func NewTestSkill(id string, opts ...SkillOption) domain.Skill {
	s := domain.Skill{
		ID:     id,
		Name:   "Skill " + id,
		Value:  5,
		Costs:  map[string]float64{domain.DimTime: 10},
		Demand: domain.DefaultDemand,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestCatalog wraps the given skills in a catalog without validating.
func NewTestCatalog(skills ...domain.Skill) domain.Catalog {
	return domain.NewCatalog(skills...)
}

// Scenario options
type ScenarioOption func(*domain.Scenario)

func WithProbability(p float64) ScenarioOption {
	return func(s *domain.Scenario) {
		s.Probability = p
	}
}

func WithBoosted(ids ...string) ScenarioOption {
	return func(s *domain.Scenario) {
		s.Boosted = ids
	}
}

func WithPenalized(ids ...string) ScenarioOption {
	return func(s *domain.Scenario) {
		s.Penalized = ids
	}
}

func WithBoostFactor(f float64) ScenarioOption {
	return func(s *domain.Scenario) {
		s.BoostFactor = f
	}
}

func NewTestScenario(name string, opts ...ScenarioOption) domain.Scenario {
	sc := domain.Scenario{
		Name:        name,
		Probability: 0.5,
		BoostFactor: 1.5,
		Description: "scenario " + name,
	}
	for _, opt := range opts {
		opt(&sc)
	}
	return sc
}

func NewTestProfile(name string, skillIDs ...string) domain.Profile {
	return domain.Profile{Name: name, SkillIDs: skillIDs}
}

// PlanRun options
type PlanRunOption func(*domain.PlanRun)

func WithLabel(label string) PlanRunOption {
	return func(r *domain.PlanRun) {
		r.Label = label
	}
}

func WithGoal(goal string) PlanRunOption {
	return func(r *domain.PlanRun) {
		r.Goal = goal
	}
}

func WithCreatedAt(t time.Time) PlanRunOption {
	return func(r *domain.PlanRun) {
		r.CreatedAt = t
	}
}

func WithRunBudget(b domain.Budget) PlanRunOption {
	return func(r *domain.PlanRun) {
		r.Budget = b
	}
}

// NewTestPlanRun builds a saved plan run with a small two-skill result.
func NewTestPlanRun(opts ...PlanRunOption) domain.PlanRun {
	r := domain.PlanRun{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		Budget:     domain.Budget{domain.DimTime: 100},
		Sequence:   []string{"S1", "S2"},
		TotalValue: 13,
		CostTotals: map[string]float64{domain.DimTime: 45},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
