package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// ErrNoFeasiblePlan is returned by Select when WithRequired names skills
// that no feasible plan can contain under the given budget.
var ErrNoFeasiblePlan = errors.New("planner: no feasible plan contains the required skills")

// Option adjusts a selection run.
type Option func(*selectConfig)

type selectConfig struct {
	required []string
}

// WithRequired constrains the selection to plans containing every named
// skill. Select returns ErrNoFeasiblePlan when no such plan fits the
// budget.
func WithRequired(ids ...string) Option {
	return func(cfg *selectConfig) {
		cfg.required = append(cfg.required, ids...)
	}
}

// Select computes the optimal plan for a catalog under a budget: the
// prerequisite-closed subset of skills that maximizes total value while
// respecting every budget dimension. Ties are broken toward the smallest
// summed cost across budget dimensions, then toward the lexicographically
// smallest canonical sequence, so the result is fully deterministic.
//
// The catalog is validated first and a *domain.InvalidCatalogError is
// returned when it is structurally broken; the budget likewise yields a
// *domain.InvalidBudgetError on a negative capacity. A skill whose cost
// exceeds the budget in some dimension is silently excluded together with
// everything that depends on it.
//
// The search enumerates prerequisite-closed subsets with branch and bound,
// O(n * 2^n) in the worst case. Catalogs in the tens of skills resolve
// instantly; callers with hundreds of skills should not use this package.
func Select(catalog domain.Catalog, budget domain.Budget, opts ...Option) (domain.Plan, error) {
	g, err := NewGraph(catalog)
	if err != nil {
		return domain.Plan{}, err
	}
	return g.Select(budget, opts...)
}

// Select runs plan selection against an already validated graph. It
// revalidates only the budget, so repeated selections over one catalog
// skip the catalog checks.
func (g *Graph) Select(budget domain.Budget, opts ...Option) (domain.Plan, error) {
	if err := budget.Validate(); err != nil {
		return domain.Plan{}, err
	}

	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Exclude skills that cannot fit the budget on their own, then
	//    propagate the exclusion to every dependent.
	dims := budget.Dimensions()
	n := g.Len()
	excluded := make([]bool, n)
	for i, s := range g.order {
		for _, d := range dims {
			if s.Cost(d) > budget[d] {
				excluded[i] = true
				break
			}
		}
	}
	for i := 0; i < n; i++ {
		if excluded[i] {
			continue
		}
		for _, p := range g.direct[i] {
			if excluded[p] {
				excluded[i] = true
				break
			}
		}
	}

	// 2. Resolve the required set against the surviving skills.
	required := make([]int, 0, len(cfg.required))
	for _, id := range cfg.required {
		pos, ok := g.index[id]
		if !ok {
			return domain.Plan{}, fmt.Errorf("required skill %q is not in the catalog", id)
		}
		if excluded[pos] {
			return domain.Plan{}, ErrNoFeasiblePlan
		}
		required = append(required, pos)
	}

	// 3. Enumerate prerequisite-closed subsets in topological order. A
	//    skill can only be taken when all its direct prerequisites were
	//    taken, so every chosen set is automatically closed. Subtrees
	//    that cannot beat the incumbent value are pruned.
	suffix := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1]
		if !excluded[i] {
			suffix[i] += g.order[i].Value
		}
	}

	chosen := make([]bool, n)
	capacity := make([]float64, len(dims))
	used := make([]float64, len(dims))
	for k, d := range dims {
		capacity[k] = budget[d]
	}

	best := struct {
		found    bool
		value    float64
		cost     float64
		sequence []string
	}{}

	consider := func(value float64) {
		for _, pos := range required {
			if !chosen[pos] {
				return
			}
		}
		cost := 0.0
		for _, u := range used {
			cost += u
		}
		if best.found {
			if value < best.value {
				return
			}
			if value == best.value {
				if cost > best.cost {
					return
				}
				if cost == best.cost && !lessSequence(g.chosenSequence(chosen), best.sequence) {
					return
				}
			}
		}
		best.found = true
		best.value = value
		best.cost = cost
		best.sequence = g.chosenSequence(chosen)
	}

	var walk func(i int, value float64)
	walk = func(i int, value float64) {
		if best.found && value+suffix[i] < best.value {
			return
		}
		if i == n {
			consider(value)
			return
		}
		if !excluded[i] && g.prereqsChosen(i, chosen) {
			s := g.order[i]
			if fits(s, dims, used, capacity) {
				// Save exact usage so backtracking cannot drift.
				saved := make([]float64, len(dims))
				copy(saved, used)
				for k, d := range dims {
					used[k] += s.Cost(d)
				}
				chosen[i] = true
				walk(i+1, value+s.Value)
				chosen[i] = false
				copy(used, saved)
			}
		}
		walk(i+1, value)
	}
	walk(0, 0)

	if !best.found {
		return domain.Plan{}, ErrNoFeasiblePlan
	}

	// 4. Materialize the winning subset as a plan.
	return g.buildPlan(best.sequence, best.value), nil
}

func (g *Graph) prereqsChosen(i int, chosen []bool) bool {
	for _, p := range g.direct[i] {
		if !chosen[p] {
			return false
		}
	}
	return true
}

func fits(s domain.Skill, dims []string, used, capacity []float64) bool {
	for k, d := range dims {
		if used[k]+s.Cost(d) > capacity[k] {
			return false
		}
	}
	return true
}

// chosenSequence converts a chosen vector to the canonical sequence. The
// chosen positions are already topologically ordered, and the canonical
// order differs only when independent skills could be swapped.
func (g *Graph) chosenSequence(chosen []bool) []string {
	var ids []string
	for i, ok := range chosen {
		if ok {
			ids = append(ids, g.order[i].ID)
		}
	}
	return g.CanonicalOrder(ids)
}

func (g *Graph) buildPlan(sequence []string, value float64) domain.Plan {
	totals := make(map[string]float64)
	for _, id := range sequence {
		for d, c := range g.order[g.index[id]].Costs {
			totals[d] += c
		}
	}
	// Normalize float drift on totals assembled from many additions.
	for d, c := range totals {
		totals[d] = roundCost(c)
	}
	return domain.Plan{Sequence: sequence, TotalValue: value, CostTotals: totals}
}

func roundCost(c float64) float64 {
	return math.Round(c*1e9) / 1e9
}

// lessSequence reports whether a orders lexicographically before b,
// comparing identifier by identifier with a shorter prefix first.
func lessSequence(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
