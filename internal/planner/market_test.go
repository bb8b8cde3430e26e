package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/domain"
)

func marketCatalog() domain.Catalog {
	return domain.NewCatalog(
		domain.Skill{ID: "A", Name: "APIs", Value: 10, Demand: 0.8, Costs: map[string]float64{domain.DimTime: 50}},
		domain.Skill{ID: "B", Name: "Batch", Value: 20, Demand: 0.9, Costs: map[string]float64{domain.DimTime: 100}, Prereqs: []string{"A"}},
		domain.Skill{ID: "C", Name: "Caching", Value: 8, Demand: 0.6, Costs: map[string]float64{domain.DimTime: 60}},
	)
}

func marketScenarios() []domain.Scenario {
	return []domain.Scenario{
		{Name: "platform_wave", Probability: 0.5, Boosted: []string{"B"}, Penalized: []string{"C"}, BoostFactor: 1.5},
		{Name: "edge_wave", Probability: 0.5, Boosted: []string{"C"}, BoostFactor: 1.2},
	}
}

func TestExpectedValue_AppliesBoostPenaltyDemandAndGrowth(t *testing.T) {
	catalog := marketCatalog()
	scenarios := marketScenarios()

	a, _ := catalog.ByID("A")
	b, _ := catalog.ByID("B")
	c, _ := catalog.ByID("C")

	// A is neutral everywhere: 10 * 0.8 * 1.08.
	assert.InDelta(t, 8.64, ExpectedValue(a, scenarios, 1), 1e-9)
	// B boosted in one scenario: (0.5*30 + 0.5*20) * 0.9 * 1.08.
	assert.InDelta(t, 24.3, ExpectedValue(b, scenarios, 1), 1e-9)
	// C penalized in one, boosted in the other: (0.5*6.4 + 0.5*9.6) * 0.6 * 1.08.
	assert.InDelta(t, 5.184, ExpectedValue(c, scenarios, 1), 1e-9)
}

func TestExpectedValue_GrowthCompoundsWithYears(t *testing.T) {
	catalog := marketCatalog()
	a, _ := catalog.ByID("A")

	year1 := ExpectedValue(a, marketScenarios(), 1)
	year3 := ExpectedValue(a, marketScenarios(), 3)

	assert.InDelta(t, 8.64, year1, 1e-9)
	assert.InDelta(t, 10*0.8*1.24, year3, 1e-9)
}

func TestExpectedValue_UnsetDemandDefaults(t *testing.T) {
	skill := domain.Skill{ID: "X", Value: 10, Costs: map[string]float64{domain.DimTime: 5}}

	got := ExpectedValue(skill, marketScenarios(), 1)

	assert.InDelta(t, 10*domain.DefaultDemand*1.08, got, 1e-9)
}

func TestAlignment_WeighsScenarioMembership(t *testing.T) {
	scenarios := marketScenarios()

	// B: boosted at 0.5 prob, neutral at 0.5.
	assert.InDelta(t, 0.5*0.9+0.5*0.4, Alignment("B", scenarios), 1e-9)
	// C: penalized at 0.5, boosted at 0.5.
	assert.InDelta(t, 0.5*0.1+0.5*0.9, Alignment("C", scenarios), 1e-9)
	// A: neutral in both.
	assert.InDelta(t, 0.4, Alignment("A", scenarios), 1e-9)
}

func TestMeanAlignment_EmptySetIsZero(t *testing.T) {
	assert.Zero(t, MeanAlignment(nil, marketScenarios()))
	assert.InDelta(t, (0.65+0.4)/2, MeanAlignment([]string{"B", "A"}, marketScenarios()), 1e-9)
}

func TestExpectedROI_ValuePerHour(t *testing.T) {
	roi := ExpectedROI(marketCatalog(), marketScenarios(), []string{"A"})

	assert.InDelta(t, 8.64/50, roi, 1e-9)
}

func TestExpectedROI_EmptyOrFreeSetsAreZero(t *testing.T) {
	assert.Zero(t, ExpectedROI(marketCatalog(), marketScenarios(), nil))

	freeCatalog := domain.NewCatalog(domain.Skill{ID: "F", Value: 5, Costs: map[string]float64{}})
	assert.Zero(t, ExpectedROI(freeCatalog, marketScenarios(), []string{"F"}))
}

func TestMarketTrends_RanksBoostedSkillsByPotential(t *testing.T) {
	trends := MarketTrends(marketCatalog(), marketScenarios())

	require.Len(t, trends, 2)
	assert.Equal(t, "platform_wave", trends[0].Scenario.Name)
	require.Len(t, trends[0].Priority, 1)
	assert.Equal(t, "B", trends[0].Priority[0].ID)
	// EV(B, 2 years) = (0.5*30 + 0.5*20) * 0.9 * 1.16; impact averages the
	// top three slots even when fewer are filled.
	assert.InDelta(t, 26.1, trends[0].Priority[0].Potential, 1e-9)
	assert.InDelta(t, 26.1/3, trends[0].Impact, 1e-9)

	assert.Equal(t, "edge_wave", trends[1].Scenario.Name)
	assert.InDelta(t, 8*1.2*0.6*1.16/3, trends[1].Impact, 1e-9)
}

func TestMarketTrends_SkipsBoostedSkillsMissingFromCatalog(t *testing.T) {
	scenarios := []domain.Scenario{
		{Name: "ghost", Probability: 1, Boosted: []string{"NOPE"}, BoostFactor: 2},
	}

	trends := MarketTrends(marketCatalog(), scenarios)

	require.Len(t, trends, 1)
	assert.Empty(t, trends[0].Priority)
	assert.Zero(t, trends[0].Impact)
}

func TestGapAnalysis_FlagsThinAreas(t *testing.T) {
	areas := []domain.Area{
		{Name: "Platform", SkillIDs: []string{"A", "B"}},
		{Name: "Edge", SkillIDs: []string{"C"}},
	}

	gaps := GapAnalysis(areas, []string{"A"})

	// Platform is half covered and therefore not a gap; Edge is empty.
	require.Len(t, gaps, 1)
	assert.Equal(t, "Edge", gaps[0].Area.Name)
	assert.Zero(t, gaps[0].Coverage)
	assert.Equal(t, []string{"C"}, gaps[0].Missing)
	assert.Equal(t, domain.GapHigh, gaps[0].Priority)
}

func TestGapAnalysis_MediumPriorityBetweenThresholds(t *testing.T) {
	areas := []domain.Area{
		{Name: "Wide", SkillIDs: []string{"A", "B", "C", "D", "E"}},
	}

	gaps := GapAnalysis(areas, []string{"A", "B"})

	require.Len(t, gaps, 1)
	assert.InDelta(t, 0.4, gaps[0].Coverage, 1e-9)
	assert.Equal(t, domain.GapMedium, gaps[0].Priority)
}

func TestGapAnalysis_NothingMissing(t *testing.T) {
	areas := []domain.Area{{Name: "Done", SkillIDs: []string{"A"}}}

	assert.Empty(t, GapAnalysis(areas, []string{"A"}))
}
