package importer

import (
	"fmt"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// ValidateCatalogDocument checks the catalog document for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateCatalogDocument(doc *CatalogDocument) []error {
	var errs []error

	if doc.Version != SchemaVersion {
		errs = append(errs, fmt.Errorf("version: got %d, expected %d", doc.Version, SchemaVersion))
	}

	skillIDs := make(map[string]bool)
	errs = append(errs, validateSkills(doc.Skills, skillIDs)...)
	errs = append(errs, validateScenarios(doc.Scenarios, skillIDs)...)
	errs = append(errs, validateProfiles(doc.Profiles, skillIDs)...)

	return errs
}

func validateSkills(skills []SkillImport, skillIDs map[string]bool) []error {
	var errs []error

	if len(skills) == 0 {
		errs = append(errs, fmt.Errorf("skills: at least one skill is required"))
		return errs
	}

	for i, s := range skills {
		prefix := fmt.Sprintf("skills[%d]", i)

		if err := (domain.Skill{ID: s.ID}).ValidateID(); err != nil {
			errs = append(errs, fmt.Errorf("%s.id: %v", prefix, err))
		} else if skillIDs[s.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate identifier %q", prefix, s.ID))
		} else {
			skillIDs[s.ID] = true
		}

		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if s.Value < 0 {
			errs = append(errs, fmt.Errorf("%s.value: %.2f must be non-negative", prefix, s.Value))
		}
		for dim, amount := range s.Costs {
			if amount < 0 {
				errs = append(errs, fmt.Errorf("%s.costs[%s]: %.2f must be non-negative", prefix, dim, amount))
			}
		}
		if s.Demand != nil && (*s.Demand < 0 || *s.Demand > 1) {
			errs = append(errs, fmt.Errorf("%s.demand: %.2f must be within [0,1]", prefix, *s.Demand))
		}
	}

	// Prereq references are checked after all IDs are known so forward
	// references inside the document are legal.
	for i, s := range skills {
		prefix := fmt.Sprintf("skills[%d]", i)
		for _, p := range s.Prereqs {
			if p == s.ID {
				errs = append(errs, fmt.Errorf("%s.prereqs: skill %q lists itself", prefix, s.ID))
			} else if !skillIDs[p] {
				errs = append(errs, fmt.Errorf("%s.prereqs: unknown skill %q", prefix, p))
			}
		}
	}

	errs = append(errs, detectPrereqCycles(skills)...)

	return errs
}

func detectPrereqCycles(skills []SkillImport) []error {
	prereqs := make(map[string][]string, len(skills))
	for _, s := range skills {
		prereqs[s.ID] = s.Prereqs
	}

	// DFS cycle detection
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		for _, p := range prereqs[id] {
			if _, known := prereqs[p]; !known || p == id {
				continue // reported as reference errors already
			}
			if color[p] == gray {
				errs = append(errs, fmt.Errorf("prerequisite cycle detected involving %q and %q", id, p))
				return true
			}
			if color[p] == white {
				if visit(p) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, s := range skills {
		if color[s.ID] == white {
			visit(s.ID)
		}
	}

	return errs
}

func validateScenarios(scenarios []ScenarioImport, skillIDs map[string]bool) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, sc := range scenarios {
		prefix := fmt.Sprintf("scenarios[%d]", i)

		if sc.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if seen[sc.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate scenario %q", prefix, sc.Name))
		} else {
			seen[sc.Name] = true
		}

		if sc.Probability < 0 || sc.Probability > 1 {
			errs = append(errs, fmt.Errorf("%s.probability: %.2f must be within [0,1]", prefix, sc.Probability))
		}
		if sc.BoostFactor != nil && *sc.BoostFactor <= 0 {
			errs = append(errs, fmt.Errorf("%s.boost_factor: %.2f must be positive", prefix, *sc.BoostFactor))
		}

		for _, id := range sc.Boosted {
			if !skillIDs[id] {
				errs = append(errs, fmt.Errorf("%s.boosted: unknown skill %q", prefix, id))
			}
		}
		for _, id := range sc.Penalized {
			if !skillIDs[id] {
				errs = append(errs, fmt.Errorf("%s.penalized: unknown skill %q", prefix, id))
			}
		}
	}

	return errs
}

func validateProfiles(profiles []ProfileImport, skillIDs map[string]bool) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, p := range profiles {
		prefix := fmt.Sprintf("profiles[%d]", i)

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if seen[p.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate profile %q", prefix, p.Name))
		} else {
			seen[p.Name] = true
		}

		for _, id := range p.Skills {
			if !skillIDs[id] {
				errs = append(errs, fmt.Errorf("%s.skills: unknown skill %q", prefix, id))
			}
		}
	}

	return errs
}
