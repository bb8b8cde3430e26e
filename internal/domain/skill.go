package domain

import (
	"fmt"
	"regexp"
)

// Canonical cost dimensions. Catalogs may define additional dimensions;
// these two are the ones the built-in dataset and most reports use.
const (
	DimTime       = "time"
	DimComplexity = "complexity"
)

// DefaultDemand is assumed when a skill does not declare market demand.
const DefaultDemand = 0.7

var skillIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,31}$`)

type Skill struct {
	ID       string
	Name     string
	Value    float64
	Costs    map[string]float64
	Prereqs  []string
	Demand   float64
	Critical bool
}

// ValidateID checks that the identifier is non-empty and matches the
// required format: a letter followed by up to 31 letters, digits,
// underscores or hyphens (e.g. S1, H10, go-basics).
func (s Skill) ValidateID() error {
	if s.ID == "" {
		return fmt.Errorf("skill identifier is required")
	}
	if !skillIDPattern.MatchString(s.ID) {
		return fmt.Errorf("skill identifier %q must start with a letter and contain only letters, digits, '_' or '-' (max 32 chars)", s.ID)
	}
	return nil
}

// Cost returns the skill's cost in the given dimension, 0 when the
// dimension is not declared.
func (s Skill) Cost(dimension string) float64 {
	return s.Costs[dimension]
}

// TimeCost is shorthand for Cost(DimTime).
func (s Skill) TimeCost() float64 {
	return s.Costs[DimTime]
}

// Ratio returns value per time unit, 0 when the skill has no time cost.
func (s Skill) Ratio() float64 {
	t := s.Costs[DimTime]
	if t <= 0 {
		return 0
	}
	return s.Value / t
}

// IsBasic reports whether the skill has no prerequisites.
func (s Skill) IsBasic() bool {
	return len(s.Prereqs) == 0
}
