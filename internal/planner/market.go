package planner

import (
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Market model constants: penalized skills lose 20% of their base value,
// demand grows 8% per year ahead, and alignment weighs boosted, neutral
// and penalized scenario membership at 0.9, 0.4 and 0.1.
const (
	penaltyFactor    = 0.8
	demandGrowth     = 0.08
	alignmentBoosted = 0.9
	alignmentNeutral = 0.4
	alignmentPenal   = 0.1
)

// Gap analysis thresholds: an area with less than half its skills covered
// is a gap, and under 20% coverage it becomes high priority.
const (
	gapCoverage     = 0.5
	gapHighPriority = 0.2
)

// TrendSkill is a boosted skill ranked inside a scenario trend.
type TrendSkill struct {
	ID        string
	Name      string
	Potential float64
	Time      float64
}

// ScenarioTrend ranks the skills a market scenario boosts by their
// projected value two years out.
type ScenarioTrend struct {
	Scenario domain.Scenario
	Priority []TrendSkill
	Impact   float64
}

// AreaGap marks a skill area the profile covers too thinly.
type AreaGap struct {
	Area     domain.Area
	Coverage float64
	Missing  []string
	Priority domain.GapPriority
}

// ExpectedValue projects a skill's value a number of years ahead,
// weighting each market scenario by its probability. Boosted skills gain
// the scenario's boost factor, penalized skills lose 20%, and everything
// scales with demand compounded by yearly growth.
func ExpectedValue(s domain.Skill, scenarios []domain.Scenario, year int) float64 {
	demand := s.Demand
	if demand == 0 {
		demand = domain.DefaultDemand
	}
	growth := 1 + float64(year)*demandGrowth

	total := 0.0
	for _, sc := range scenarios {
		value := s.Value
		if sc.Boosts(s.ID) {
			value *= sc.BoostFactor
		} else if sc.Penalizes(s.ID) {
			value *= penaltyFactor
		}
		total += value * demand * growth * sc.Probability
	}
	return total
}

// Alignment scores how well a skill tracks the market scenarios,
// probability-weighted.
func Alignment(id string, scenarios []domain.Scenario) float64 {
	total := 0.0
	for _, sc := range scenarios {
		switch {
		case sc.Boosts(id):
			total += sc.Probability * alignmentBoosted
		case !sc.Penalizes(id):
			total += sc.Probability * alignmentNeutral
		default:
			total += sc.Probability * alignmentPenal
		}
	}
	return total
}

// MeanAlignment averages Alignment over a set of skills, 0 when empty.
func MeanAlignment(ids []string, scenarios []domain.Scenario) float64 {
	if len(ids) == 0 {
		return 0
	}
	total := 0.0
	for _, id := range ids {
		total += Alignment(id, scenarios)
	}
	return total / float64(len(ids))
}

// ExpectedROI is the one-year expected value of a skill set per hour of
// acquisition time.
func ExpectedROI(catalog domain.Catalog, scenarios []domain.Scenario, ids []string) float64 {
	if len(ids) == 0 {
		return 0
	}
	value, time := 0.0, 0.0
	for _, id := range ids {
		s, ok := catalog.ByID(id)
		if !ok {
			continue
		}
		value += ExpectedValue(s, scenarios, 1)
		time += s.TimeCost()
	}
	if time == 0 {
		return 0
	}
	return value / time
}

// MarketTrends ranks, per scenario, the boosted skills by their two-year
// potential. The impact figure averages the top three potentials and is
// what makes scenarios comparable.
func MarketTrends(catalog domain.Catalog, scenarios []domain.Scenario) []ScenarioTrend {
	trends := make([]ScenarioTrend, 0, len(scenarios))
	for _, sc := range scenarios {
		var priority []TrendSkill
		for _, id := range sc.Boosted {
			s, ok := catalog.ByID(id)
			if !ok {
				continue
			}
			priority = append(priority, TrendSkill{
				ID:        s.ID,
				Name:      s.Name,
				Potential: ExpectedValue(s, scenarios, 2),
				Time:      s.TimeCost(),
			})
		}
		sort.SliceStable(priority, func(i, j int) bool {
			if priority[i].Potential != priority[j].Potential {
				return priority[i].Potential > priority[j].Potential
			}
			return priority[i].ID < priority[j].ID
		})
		if len(priority) > 5 {
			priority = priority[:5]
		}

		impact := 0.0
		for i := 0; i < len(priority) && i < 3; i++ {
			impact += priority[i].Potential
		}
		impact /= 3

		trends = append(trends, ScenarioTrend{Scenario: sc, Priority: priority, Impact: impact})
	}
	return trends
}

// GapAnalysis reports the areas where the acquired skills cover less
// than half of the area, in the given area order.
func GapAnalysis(areas []domain.Area, acquired []string) []AreaGap {
	have := make(map[string]bool, len(acquired))
	for _, id := range acquired {
		have[id] = true
	}

	var gaps []AreaGap
	for _, area := range areas {
		if len(area.SkillIDs) == 0 {
			continue
		}
		covered := 0
		var missing []string
		for _, id := range area.SkillIDs {
			if have[id] {
				covered++
			} else {
				missing = append(missing, id)
			}
		}
		coverage := float64(covered) / float64(len(area.SkillIDs))
		if coverage >= gapCoverage {
			continue
		}
		priority := domain.GapMedium
		if coverage < gapHighPriority {
			priority = domain.GapHigh
		}
		gaps = append(gaps, AreaGap{Area: area, Coverage: coverage, Missing: missing, Priority: priority})
	}
	return gaps
}
