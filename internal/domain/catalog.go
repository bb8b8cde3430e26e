package domain

import (
	"fmt"
	"sort"
)

// Catalog is the full set of skills under consideration. It is built once
// per run and consumed read-only; all lookups are pure.
type Catalog struct {
	Skills []Skill
}

func NewCatalog(skills ...Skill) Catalog {
	return Catalog{Skills: skills}
}

func (c Catalog) Len() int {
	return len(c.Skills)
}

// ByID returns the skill with the given identifier.
func (c Catalog) ByID(id string) (Skill, bool) {
	for _, s := range c.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

func (c Catalog) Contains(id string) bool {
	_, ok := c.ByID(id)
	return ok
}

// IDs returns the skill identifiers in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		ids = append(ids, s.ID)
	}
	return ids
}

// Basics returns the skills without prerequisites, in catalog order.
func (c Catalog) Basics() []Skill {
	var basics []Skill
	for _, s := range c.Skills {
		if s.IsBasic() {
			basics = append(basics, s)
		}
	}
	return basics
}

// CriticalIDs returns the identifiers flagged as critical, in catalog order.
func (c Catalog) CriticalIDs() []string {
	var ids []string
	for _, s := range c.Skills {
		if s.Critical {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Dimensions returns the sorted union of cost dimensions declared by the
// catalog's skills.
func (c Catalog) Dimensions() []string {
	seen := map[string]bool{}
	for _, s := range c.Skills {
		for dim := range s.Costs {
			seen[dim] = true
		}
	}
	dims := make([]string, 0, len(seen))
	for dim := range seen {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}

// Validate checks every catalog invariant at once: identifier syntax and
// uniqueness, non-negative value and costs, demand within [0,1], prereq
// references resolving inside the catalog, and an acyclic prereq relation.
// All problems are accumulated into a single *InvalidCatalogError.
func (c Catalog) Validate() error {
	var issues []string

	seen := map[string]bool{}
	for _, s := range c.Skills {
		if err := s.ValidateID(); err != nil {
			issues = append(issues, err.Error())
			continue
		}
		if seen[s.ID] {
			issues = append(issues, fmt.Sprintf("duplicate skill identifier %q", s.ID))
		}
		seen[s.ID] = true
		if s.Value < 0 {
			issues = append(issues, fmt.Sprintf("skill %s: value %.2f must be non-negative", s.ID, s.Value))
		}
		for dim, amount := range s.Costs {
			if amount < 0 {
				issues = append(issues, fmt.Sprintf("skill %s: cost %.2f in dimension %q must be non-negative", s.ID, amount, dim))
			}
		}
		if s.Demand < 0 || s.Demand > 1 {
			issues = append(issues, fmt.Sprintf("skill %s: demand %.2f must be within [0,1]", s.ID, s.Demand))
		}
	}

	for _, s := range c.Skills {
		for _, prereq := range s.Prereqs {
			if prereq == s.ID {
				issues = append(issues, fmt.Sprintf("skill %s lists itself as prerequisite", s.ID))
			} else if !seen[prereq] {
				issues = append(issues, fmt.Sprintf("skill %s references unknown prerequisite %q", s.ID, prereq))
			}
		}
	}

	issues = append(issues, c.detectCycles()...)

	if len(issues) > 0 {
		return &InvalidCatalogError{Issues: issues}
	}
	return nil
}

// detectCycles walks the prereq relation with three-color DFS and reports
// one issue per back edge found.
func (c Catalog) detectCycles() []string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // fully explored
	)

	color := make(map[string]int, len(c.Skills))
	prereqs := make(map[string][]string, len(c.Skills))
	for _, s := range c.Skills {
		prereqs[s.ID] = s.Prereqs
	}

	var issues []string
	var path []string

	var visit func(id string)
	visit = func(id string) {
		color[id] = gray
		path = append(path, id)
		for _, prereq := range prereqs[id] {
			if _, known := prereqs[prereq]; !known {
				continue // dangling references are reported separately
			}
			switch color[prereq] {
			case white:
				visit(prereq)
			case gray:
				cycle := append(append([]string{}, path...), prereq)
				issues = append(issues, fmt.Sprintf("prerequisite cycle: %s", joinArrow(cycle)))
			}
		}
		path = path[:len(path)-1]
		color[id] = black
	}

	for _, s := range c.Skills {
		if color[s.ID] == white {
			visit(s.ID)
		}
	}
	return issues
}

func joinArrow(ids []string) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += " -> "
		}
		out += id
	}
	return out
}
