package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() Catalog {
	return NewCatalog(
		Skill{ID: "A", Name: "Alpha", Value: 10, Costs: map[string]float64{DimTime: 2}, Demand: 0.9},
		Skill{ID: "B", Name: "Beta", Value: 15, Costs: map[string]float64{DimTime: 3}, Prereqs: []string{"A"}, Demand: 0.8},
		Skill{ID: "C", Name: "Gamma", Value: 8, Costs: map[string]float64{DimTime: 1}, Demand: 0.7, Critical: true},
	)
}

func TestCatalogValidate_OK(t *testing.T) {
	assert.NoError(t, validCatalog().Validate())
}

func TestCatalogValidate_EmptyCatalogOK(t *testing.T) {
	assert.NoError(t, Catalog{}.Validate())
}

func TestCatalogValidate_DuplicateID(t *testing.T) {
	c := NewCatalog(Skill{ID: "A"}, Skill{ID: "A"})
	err := c.Validate()
	require.Error(t, err)
	var catErr *InvalidCatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Contains(t, catErr.Error(), "duplicate skill identifier")
}

func TestCatalogValidate_DanglingPrereq(t *testing.T) {
	c := NewCatalog(Skill{ID: "A", Prereqs: []string{"ZZ"}})
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown prerequisite "ZZ"`)
}

func TestCatalogValidate_SelfPrereq(t *testing.T) {
	c := NewCatalog(Skill{ID: "A", Prereqs: []string{"A"}})
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lists itself")
}

func TestCatalogValidate_Cycle(t *testing.T) {
	c := NewCatalog(
		Skill{ID: "A", Prereqs: []string{"B"}},
		Skill{ID: "B", Prereqs: []string{"A"}},
	)
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prerequisite cycle")
}

func TestCatalogValidate_AccumulatesAllIssues(t *testing.T) {
	c := NewCatalog(
		Skill{ID: "A", Value: -1, Prereqs: []string{"ZZ"}},
		Skill{ID: "B", Demand: 1.5, Costs: map[string]float64{DimTime: -3}},
		Skill{ID: "C", Prereqs: []string{"D"}},
		Skill{ID: "D", Prereqs: []string{"C"}},
	)
	err := c.Validate()
	require.Error(t, err)
	var catErr *InvalidCatalogError
	require.ErrorAs(t, err, &catErr)
	assert.GreaterOrEqual(t, len(catErr.Issues), 5)
}

func TestCatalogByID(t *testing.T) {
	c := validCatalog()
	s, ok := c.ByID("B")
	require.True(t, ok)
	assert.Equal(t, "Beta", s.Name)
	_, ok = c.ByID("ZZ")
	assert.False(t, ok)
}

func TestCatalogBasics(t *testing.T) {
	basics := validCatalog().Basics()
	require.Len(t, basics, 2)
	assert.Equal(t, "A", basics[0].ID)
	assert.Equal(t, "C", basics[1].ID)
}

func TestCatalogCriticalIDs(t *testing.T) {
	assert.Equal(t, []string{"C"}, validCatalog().CriticalIDs())
}

func TestCatalogDimensions_SortedUnion(t *testing.T) {
	c := NewCatalog(
		Skill{ID: "A", Costs: map[string]float64{DimTime: 1}},
		Skill{ID: "B", Costs: map[string]float64{DimComplexity: 2, "focus": 1}},
	)
	assert.Equal(t, []string{DimComplexity, "focus", DimTime}, c.Dimensions())
}

func TestBudgetValidate_Negative(t *testing.T) {
	b := Budget{DimTime: 10, DimComplexity: -1}
	err := b.Validate()
	require.Error(t, err)
	var budErr *InvalidBudgetError
	require.ErrorAs(t, err, &budErr)
	assert.Equal(t, DimComplexity, budErr.Dimension)
}

func TestBudgetIsZero(t *testing.T) {
	assert.True(t, Budget{}.IsZero())
	assert.True(t, Budget{DimTime: 0}.IsZero())
	assert.False(t, Budget{DimTime: 1}.IsZero())
}

func TestPlanContainsAndCost(t *testing.T) {
	p := Plan{Sequence: []string{"A", "C"}, TotalValue: 18, CostTotals: map[string]float64{DimTime: 3}}
	assert.True(t, p.Contains("A"))
	assert.False(t, p.Contains("B"))
	assert.Equal(t, 3.0, p.Cost(DimTime))
	assert.False(t, p.IsEmpty())
	assert.True(t, Plan{}.IsEmpty())
}
