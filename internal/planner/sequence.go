package planner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// MaxSequenceSkills caps the permutation study. Factorial growth makes
// anything beyond 8 skills (40320 orderings) pointless to enumerate.
const MaxSequenceSkills = 8

// ErrSequenceTooLong is returned by StudySequences when more than
// MaxSequenceSkills identifiers are given.
var ErrSequenceTooLong = errors.New("planner: sequence study is limited to 8 skills")

// SequencePlan is one evaluated ordering of the studied skills. Expanded
// is the actual acquisition order after pulling in prerequisites.
// TotalTime counts every acquired skill once and is the same for every
// ordering of one set; CompletionCost sums the elapsed hours at which
// each studied skill is finished, so orderings that reach the studied
// skills early score lower.
type SequencePlan struct {
	Order          []string
	Expanded       []string
	TotalTime      float64
	CompletionCost float64
	Efficiency     float64
}

// SequenceStudy ranks every permutation of a set of skills by completion
// cost.
type SequenceStudy struct {
	Skills       []string
	Permutations int
	Ranked       []SequencePlan
	BestCost     float64
	WorstCost    float64
	MeanCost     float64
	TotalTime    float64
}

// Top returns the n best orderings.
func (s SequenceStudy) Top(n int) []SequencePlan {
	if n > len(s.Ranked) {
		n = len(s.Ranked)
	}
	return s.Ranked[:n]
}

// StudySequences enumerates every ordering of the given skills and costs
// each one. Walking an ordering, every skill is acquired right after its
// missing prerequisites and pays its time cost exactly once; the
// ordering's cost is the sum of the elapsed times at which the studied
// skills complete. The ranking ascends by that cost, ties resolved
// toward the lexicographically earlier ordering.
func StudySequences(catalog domain.Catalog, ids []string) (SequenceStudy, error) {
	if err := catalog.Validate(); err != nil {
		return SequenceStudy{}, err
	}
	if len(ids) == 0 {
		return SequenceStudy{}, fmt.Errorf("sequence study needs at least one skill")
	}
	if len(ids) > MaxSequenceSkills {
		return SequenceStudy{}, ErrSequenceTooLong
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := catalog.ByID(id); !ok {
			return SequenceStudy{}, fmt.Errorf("skill %q is not in the catalog", id)
		}
		if seen[id] {
			return SequenceStudy{}, fmt.Errorf("skill %q is listed twice", id)
		}
		seen[id] = true
	}

	skills := make([]string, len(ids))
	copy(skills, ids)
	sort.Strings(skills)

	var ranked []SequencePlan
	permute(skills, nil, func(order []string) {
		ranked = append(ranked, costSequence(catalog, order))
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompletionCost < ranked[j].CompletionCost
	})

	study := SequenceStudy{
		Skills:       skills,
		Permutations: len(ranked),
		Ranked:       ranked,
		BestCost:     ranked[0].CompletionCost,
		WorstCost:    ranked[len(ranked)-1].CompletionCost,
		TotalTime:    ranked[0].TotalTime,
	}
	sum := 0.0
	for i := range ranked {
		sum += ranked[i].CompletionCost
		if ranked[i].CompletionCost > 0 {
			ranked[i].Efficiency = study.BestCost / ranked[i].CompletionCost
		} else {
			ranked[i].Efficiency = 1
		}
	}
	study.MeanCost = sum / float64(len(ranked))
	return study, nil
}

// permute emits every ordering of remaining appended to prefix, in
// lexicographic order when remaining is sorted.
func permute(remaining, prefix []string, emit func([]string)) {
	if len(remaining) == 0 {
		order := make([]string, len(prefix))
		copy(order, prefix)
		emit(order)
		return
	}
	for i := range remaining {
		next := make([]string, 0, len(remaining)-1)
		next = append(next, remaining[:i]...)
		next = append(next, remaining[i+1:]...)
		permute(next, append(prefix, remaining[i]), emit)
	}
}

// costSequence walks an ordering, acquiring each skill after its missing
// prerequisites, depth first in declared prerequisite order. Elapsed time
// grows with every acquisition; the completion cost adds up the elapsed
// marks of the ordered skills themselves.
func costSequence(catalog domain.Catalog, order []string) SequencePlan {
	acquired := make(map[string]bool)
	var expanded []string
	elapsed := 0.0

	var acquire func(id string)
	acquire = func(id string) {
		if acquired[id] {
			return
		}
		skill, _ := catalog.ByID(id)
		for _, prereq := range skill.Prereqs {
			acquire(prereq)
		}
		elapsed += skill.TimeCost()
		acquired[id] = true
		expanded = append(expanded, id)
	}

	completion := 0.0
	for _, id := range order {
		acquire(id)
		completion += elapsed
	}
	return SequencePlan{
		Order:          order,
		Expanded:       expanded,
		TotalTime:      elapsed,
		CompletionCost: completion,
	}
}
