package planner

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// randomCatalog builds a small random DAG: prerequisites only point to
// earlier skills, so the result is always acyclic. Values and costs are
// whole numbers to keep float comparisons exact.
func randomCatalog(rng *rand.Rand) domain.Catalog {
	n := rng.Intn(8) + 2
	skills := make([]domain.Skill, n)
	for i := 0; i < n; i++ {
		var prereqs []string
		for j := 0; j < i; j++ {
			if rng.Float64() < 0.25 {
				prereqs = append(prereqs, fmt.Sprintf("S%d", j))
			}
		}
		skills[i] = domain.Skill{
			ID:    fmt.Sprintf("S%d", i),
			Value: float64(rng.Intn(20) + 1),
			Costs: map[string]float64{
				domain.DimTime:       float64(rng.Intn(8) + 1),
				domain.DimComplexity: float64(rng.Intn(10) + 1),
			},
			Prereqs: prereqs,
		}
	}
	return domain.NewCatalog(skills...)
}

func randomBudget(rng *rand.Rand) domain.Budget {
	budget := domain.Budget{domain.DimTime: float64(rng.Intn(26))}
	if rng.Intn(2) == 1 {
		budget[domain.DimComplexity] = float64(rng.Intn(31))
	}
	return budget
}

// bruteForce enumerates every prerequisite-closed feasible subset and
// returns the best value and, among subsets of that value, the smallest
// summed cost over the budget dimensions.
func bruteForce(catalog domain.Catalog, budget domain.Budget) (bestValue, bestCost float64) {
	n := len(catalog.Skills)
	dims := budget.Dimensions()
	bestValue, bestCost = -1, 0

	for mask := 0; mask < 1<<n; mask++ {
		members := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				members[catalog.Skills[i].ID] = true
			}
		}

		closed, value, cost := true, 0.0, 0.0
		over := false
		usage := make(map[string]float64, len(dims))
		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			s := catalog.Skills[i]
			for _, prereq := range s.Prereqs {
				if !members[prereq] {
					closed = false
				}
			}
			value += s.Value
			for _, d := range dims {
				usage[d] += s.Cost(d)
				cost += s.Cost(d)
			}
		}
		for _, d := range dims {
			if usage[d] > budget[d] {
				over = true
			}
		}
		if !closed || over {
			continue
		}
		if value > bestValue || (value == bestValue && cost < bestCost) {
			bestValue, bestCost = value, cost
		}
	}
	return bestValue, bestCost
}

func planBudgetCost(catalog domain.Catalog, budget domain.Budget, plan domain.Plan) float64 {
	cost := 0.0
	for _, id := range plan.Sequence {
		s, _ := catalog.ByID(id)
		for _, d := range budget.Dimensions() {
			cost += s.Cost(d)
		}
	}
	return cost
}

func TestSelect_Property_MatchesBruteForceOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 150; trial++ {
		catalog := randomCatalog(rng)
		budget := randomBudget(rng)

		plan, err := Select(catalog, budget)
		require.NoError(t, err, "trial %d", trial)

		bestValue, bestCost := bruteForce(catalog, budget)
		assert.Equal(t, bestValue, plan.TotalValue,
			"trial %d: plan value must equal the exhaustive optimum", trial)
		assert.Equal(t, bestCost, planBudgetCost(catalog, budget, plan),
			"trial %d: plan cost must be minimal among optimal-value plans", trial)
	}
}

func TestSelect_Property_SequenceRespectsPrerequisites(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 150; trial++ {
		catalog := randomCatalog(rng)
		budget := randomBudget(rng)

		plan, err := Select(catalog, budget)
		require.NoError(t, err, "trial %d", trial)

		position := make(map[string]int, len(plan.Sequence))
		for i, id := range plan.Sequence {
			position[id] = i
		}
		for _, id := range plan.Sequence {
			s, ok := catalog.ByID(id)
			require.True(t, ok, "trial %d: plan names unknown skill %s", trial, id)
			for _, prereq := range s.Prereqs {
				p, in := position[prereq]
				assert.True(t, in, "trial %d: prerequisite %s of %s missing from plan", trial, prereq, id)
				assert.Less(t, p, position[id],
					"trial %d: prerequisite %s must precede %s", trial, prereq, id)
			}
		}
	}
}

func TestSelect_Property_BudgetNeverExceeded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 150; trial++ {
		catalog := randomCatalog(rng)
		budget := randomBudget(rng)

		plan, err := Select(catalog, budget)
		require.NoError(t, err, "trial %d", trial)

		usage := make(map[string]float64)
		for _, id := range plan.Sequence {
			s, _ := catalog.ByID(id)
			for _, d := range budget.Dimensions() {
				usage[d] += s.Cost(d)
			}
		}
		for _, d := range budget.Dimensions() {
			assert.LessOrEqual(t, usage[d], budget[d],
				"trial %d: dimension %s over budget", trial, d)
		}
	}
}

func TestSelect_Property_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		catalog := randomCatalog(rng)
		budget := randomBudget(rng)

		first, err := Select(catalog, budget)
		require.NoError(t, err, "trial %d", trial)
		second, err := Select(catalog, budget)
		require.NoError(t, err, "trial %d", trial)

		assert.Equal(t, first, second, "trial %d: repeated runs must agree exactly", trial)
	}
}

func TestSelect_Property_MonotoneInBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		catalog := randomCatalog(rng)
		budget := randomBudget(rng)

		tight, err := Select(catalog, budget)
		require.NoError(t, err, "trial %d", trial)

		loose := domain.Budget{}
		for d, limit := range budget {
			loose[d] = limit + float64(rng.Intn(6))
		}
		wide, err := Select(catalog, loose)
		require.NoError(t, err, "trial %d", trial)

		assert.GreaterOrEqual(t, wide.TotalValue, tight.TotalValue,
			"trial %d: growing the budget must never lose value", trial)
	}
}

func TestSelect_Property_LexicographicallySmallestAmongTies(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 60; trial++ {
		catalog := randomCatalog(rng)
		budget := randomBudget(rng)

		plan, err := Select(catalog, budget)
		require.NoError(t, err, "trial %d", trial)

		g, err := NewGraph(catalog)
		require.NoError(t, err)
		bestValue, bestCost := bruteForce(catalog, budget)
		dims := budget.Dimensions()

		// Collect the canonical sequences of every tied optimum and make
		// sure the plan is the lexicographically smallest of them.
		n := len(catalog.Skills)
		for mask := 0; mask < 1<<n; mask++ {
			members := make(map[string]bool, n)
			var ids []string
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					members[catalog.Skills[i].ID] = true
					ids = append(ids, catalog.Skills[i].ID)
				}
			}
			closed, value, cost := true, 0.0, 0.0
			usage := make(map[string]float64, len(dims))
			for i := 0; i < n; i++ {
				if mask&(1<<i) == 0 {
					continue
				}
				s := catalog.Skills[i]
				for _, prereq := range s.Prereqs {
					if !members[prereq] {
						closed = false
					}
				}
				value += s.Value
				for _, d := range dims {
					usage[d] += s.Cost(d)
					cost += s.Cost(d)
				}
			}
			over := false
			for _, d := range dims {
				if usage[d] > budget[d] {
					over = true
				}
			}
			if !closed || over || value != bestValue || cost != bestCost {
				continue
			}
			tied := g.CanonicalOrder(ids)
			assert.False(t, lessSequence(tied, plan.Sequence),
				"trial %d: tied optimum %v orders before plan %v", trial, tied, plan.Sequence)
		}
	}
}
