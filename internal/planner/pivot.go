package planner

import (
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// PivotResult is the outcome of one strategy run against a value target:
// which foundation skills were picked and what they add up to.
type PivotResult struct {
	SkillIDs   []string
	Value      float64
	Time       float64
	Complexity float64
	TargetMet  bool
	Excess     float64
	Efficiency float64
	Criterion  domain.PivotCriterion
}

// PivotCounterexample records a target where the greedy strategy loses to
// the exhaustive optimum, and how.
type PivotCounterexample struct {
	Target   float64
	Greedy   PivotResult
	Optimal  PivotResult
	Kind     domain.CounterexampleKind
	ValueGap float64
	TimeGap  float64
}

// PivotStudy compares strategies across a range of value targets.
type PivotStudy struct {
	Targets         []float64
	Greedy          []map[domain.PivotCriterion]PivotResult
	Optimal         []PivotResult
	Counterexamples []PivotCounterexample
}

// GreedyPivot accumulates foundation skills, ordered by the criterion,
// until the value target is reached. Ties in the ordering keep catalog
// order. Only skills without prerequisites participate.
func GreedyPivot(catalog domain.Catalog, target float64, criterion domain.PivotCriterion) PivotResult {
	basics := catalog.Basics()
	switch criterion {
	case domain.PivotByValue:
		sort.SliceStable(basics, func(i, j int) bool { return basics[i].Value > basics[j].Value })
	case domain.PivotByTime:
		sort.SliceStable(basics, func(i, j int) bool { return basics[i].TimeCost() < basics[j].TimeCost() })
	default:
		sort.SliceStable(basics, func(i, j int) bool { return basics[i].Ratio() > basics[j].Ratio() })
		criterion = domain.PivotByRatio
	}

	result := PivotResult{Criterion: criterion}
	for _, s := range basics {
		if result.Value >= target {
			break
		}
		result.SkillIDs = append(result.SkillIDs, s.ID)
		result.Value += s.Value
		result.Time += s.TimeCost()
		result.Complexity += s.Cost(domain.DimComplexity)
	}
	result.TargetMet = result.Value >= target
	finishPivot(&result, target)
	return result
}

// OptimalPivot exhaustively searches the subsets of foundation skills for
// the least total value that still reaches the target, breaking ties
// toward less time. O(2^n) in the number of foundation skills.
func OptimalPivot(catalog domain.Catalog, target float64) PivotResult {
	basics := catalog.Basics()
	n := len(basics)

	var best PivotResult
	found := false
	pick := make([]bool, n)

	var walk func(i int)
	walk = func(i int) {
		if i == n {
			candidate := PivotResult{}
			for k, taken := range pick {
				if !taken {
					continue
				}
				candidate.SkillIDs = append(candidate.SkillIDs, basics[k].ID)
				candidate.Value += basics[k].Value
				candidate.Time += basics[k].TimeCost()
				candidate.Complexity += basics[k].Cost(domain.DimComplexity)
			}
			if len(candidate.SkillIDs) == 0 || candidate.Value < target {
				return
			}
			if !found || candidate.Value < best.Value ||
				(candidate.Value == best.Value && candidate.Time < best.Time) {
				best = candidate
				found = true
			}
			return
		}
		pick[i] = true
		walk(i + 1)
		pick[i] = false
		walk(i + 1)
	}
	walk(0)

	best.TargetMet = found
	finishPivot(&best, target)
	return best
}

// FindPivotCounterexample runs the ratio-driven greedy strategy against
// the exhaustive optimum for one target and reports a mismatch, if any.
func FindPivotCounterexample(catalog domain.Catalog, target float64) (PivotCounterexample, bool) {
	greedy := GreedyPivot(catalog, target, domain.PivotByRatio)
	optimal := OptimalPivot(catalog, target)

	cx := PivotCounterexample{Target: target, Greedy: greedy, Optimal: optimal}
	switch {
	case greedy.TargetMet && optimal.TargetMet && greedy.Value > optimal.Value:
		cx.Kind = domain.CounterExcessValue
		cx.ValueGap = greedy.Value - optimal.Value
		cx.TimeGap = greedy.Time - optimal.Time
	case greedy.TargetMet && optimal.TargetMet && greedy.Value == optimal.Value && greedy.Time > optimal.Time:
		cx.Kind = domain.CounterExtraTime
		cx.TimeGap = greedy.Time - optimal.Time
	case !greedy.TargetMet && optimal.TargetMet:
		cx.Kind = domain.CounterMissedTarget
		cx.ValueGap = optimal.Value
		cx.TimeGap = optimal.Time
	default:
		return PivotCounterexample{}, false
	}
	return cx, true
}

// StudyPivots sweeps the given targets, collecting per-criterion greedy
// runs, the exhaustive optimum, and every counterexample found.
func StudyPivots(catalog domain.Catalog, targets []float64) PivotStudy {
	study := PivotStudy{Targets: targets}
	criteria := []domain.PivotCriterion{domain.PivotByRatio, domain.PivotByValue, domain.PivotByTime}

	for _, target := range targets {
		greedy := make(map[domain.PivotCriterion]PivotResult, len(criteria))
		for _, c := range criteria {
			greedy[c] = GreedyPivot(catalog, target, c)
		}
		study.Greedy = append(study.Greedy, greedy)
		study.Optimal = append(study.Optimal, OptimalPivot(catalog, target))
		if cx, ok := FindPivotCounterexample(catalog, target); ok {
			study.Counterexamples = append(study.Counterexamples, cx)
		}
	}
	return study
}

func finishPivot(r *PivotResult, target float64) {
	if r.TargetMet && r.Value > target {
		r.Excess = r.Value - target
	}
	if r.Time > 0 {
		r.Efficiency = r.Value / r.Time
	}
}
