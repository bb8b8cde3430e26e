// Package planner holds the pure planning algorithms: the constrained
// optimal selector and the analyses built around it. Nothing in this
// package performs I/O or keeps state across calls.
package planner

import (
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Graph is a validated catalog with its prerequisite structure resolved:
// skills held in canonical topological order, direct prerequisite and
// dependent positions precomputed. Build it once per catalog and reuse it
// across computations; it is never mutated after construction.
type Graph struct {
	order      []domain.Skill
	index      map[string]int
	direct     [][]int
	dependents [][]int
}

// NewGraph validates the catalog and resolves its prerequisite structure.
// The returned error is *domain.InvalidCatalogError when the catalog is
// structurally broken.
func NewGraph(catalog domain.Catalog) (*Graph, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	order := canonicalTopo(catalog)
	index := make(map[string]int, len(order))
	for i, s := range order {
		index[s.ID] = i
	}

	direct := make([][]int, len(order))
	dependents := make([][]int, len(order))
	for i, s := range order {
		for _, prereq := range s.Prereqs {
			p := index[prereq]
			direct[i] = append(direct[i], p)
			dependents[p] = append(dependents[p], i)
		}
	}

	return &Graph{order: order, index: index, direct: direct, dependents: dependents}, nil
}

func (g *Graph) Len() int {
	return len(g.order)
}

// Order returns the skill identifiers in canonical topological order.
func (g *Graph) Order() []string {
	ids := make([]string, len(g.order))
	for i, s := range g.order {
		ids[i] = s.ID
	}
	return ids
}

// Skill returns the skill at a topological position.
func (g *Graph) Skill(pos int) domain.Skill {
	return g.order[pos]
}

// CanonicalOrder arranges a downward-closed set of skill identifiers into
// the canonical acquisition order: a topological order that always emits
// the lexicographically smallest ready identifier first. The result is
// deterministic for a given member set.
func (g *Graph) CanonicalOrder(ids []string) []string {
	members := make(map[string]bool, len(ids))
	for _, id := range ids {
		members[id] = true
	}

	pending := make(map[string]int, len(ids))
	for id := range members {
		count := 0
		for _, p := range g.direct[g.index[id]] {
			if members[g.order[p].ID] {
				count++
			}
		}
		pending[id] = count
	}

	var ready []string
	for id, count := range pending {
		if count == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	sequence := make([]string, 0, len(ids))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		sequence = append(sequence, id)

		for _, d := range g.dependents[g.index[id]] {
			dep := g.order[d].ID
			if !members[dep] {
				continue
			}
			pending[dep]--
			if pending[dep] == 0 {
				ready = append(ready, dep)
				sort.Strings(ready)
			}
		}
	}
	return sequence
}

// clone returns a graph sharing this graph's structure but with every
// skill passed through transform. The transform must not change
// identifiers or prerequisites.
func (g *Graph) clone(transform func(domain.Skill) domain.Skill) *Graph {
	order := make([]domain.Skill, len(g.order))
	for i, s := range g.order {
		order[i] = transform(s)
	}
	return &Graph{order: order, index: g.index, direct: g.direct, dependents: g.dependents}
}

// canonicalTopo computes the catalog-wide canonical topological order:
// Kahn's algorithm emitting the smallest ready identifier first. The
// catalog must already be known acyclic.
func canonicalTopo(catalog domain.Catalog) []domain.Skill {
	byID := make(map[string]domain.Skill, len(catalog.Skills))
	pending := make(map[string]int, len(catalog.Skills))
	dependents := make(map[string][]string, len(catalog.Skills))
	for _, s := range catalog.Skills {
		byID[s.ID] = s
		pending[s.ID] = len(s.Prereqs)
		for _, prereq := range s.Prereqs {
			dependents[prereq] = append(dependents[prereq], s.ID)
		}
	}

	var ready []string
	for _, s := range catalog.Skills {
		if pending[s.ID] == 0 {
			ready = append(ready, s.ID)
		}
	}
	sort.Strings(ready)

	order := make([]domain.Skill, 0, len(catalog.Skills))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, byID[id])

		for _, dep := range dependents[id] {
			pending[dep]--
			if pending[dep] == 0 {
				ready = append(ready, dep)
				sort.Strings(ready)
			}
		}
	}
	return order
}

// Unlocked returns the skills whose prerequisites are all contained in
// acquired, excluding skills already acquired, in catalog order.
func Unlocked(catalog domain.Catalog, acquired []string) []domain.Skill {
	have := make(map[string]bool, len(acquired))
	for _, id := range acquired {
		have[id] = true
	}

	var unlocked []domain.Skill
	for _, s := range catalog.Skills {
		if have[s.ID] {
			continue
		}
		ok := true
		for _, prereq := range s.Prereqs {
			if !have[prereq] {
				ok = false
				break
			}
		}
		if ok {
			unlocked = append(unlocked, s)
		}
	}
	return unlocked
}
