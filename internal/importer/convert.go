package importer

import (
	"github.com/alexanderramin/skillpath/internal/domain"
)

// defaultBoostFactor applies when a scenario omits boost_factor; 1.0 keeps
// expected values unchanged.
const defaultBoostFactor = 1.0

// Converted bundles the domain objects produced from a catalog document.
type Converted struct {
	Catalog   domain.Catalog
	Scenarios []domain.Scenario
	Profiles  []domain.Profile
}

// ToDomain transforms a validated catalog document into domain objects
// ready for persistence. Call ValidateCatalogDocument first; ToDomain
// assumes the document is valid.
func ToDomain(doc *CatalogDocument) Converted {
	skills := make([]domain.Skill, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		demand := domain.DefaultDemand
		if s.Demand != nil {
			demand = *s.Demand
		}
		costs := make(map[string]float64, len(s.Costs))
		for dim, amount := range s.Costs {
			costs[dim] = amount
		}
		skills = append(skills, domain.Skill{
			ID:       s.ID,
			Name:     s.Name,
			Value:    s.Value,
			Costs:    costs,
			Prereqs:  append([]string(nil), s.Prereqs...),
			Demand:   demand,
			Critical: s.Critical,
		})
	}

	scenarios := make([]domain.Scenario, 0, len(doc.Scenarios))
	for _, sc := range doc.Scenarios {
		factor := defaultBoostFactor
		if sc.BoostFactor != nil {
			factor = *sc.BoostFactor
		}
		scenarios = append(scenarios, domain.Scenario{
			Name:        sc.Name,
			Probability: sc.Probability,
			Boosted:     append([]string(nil), sc.Boosted...),
			Penalized:   append([]string(nil), sc.Penalized...),
			BoostFactor: factor,
			Description: sc.Description,
		})
	}

	profiles := make([]domain.Profile, 0, len(doc.Profiles))
	for _, p := range doc.Profiles {
		profiles = append(profiles, domain.Profile{
			Name:     p.Name,
			SkillIDs: append([]string(nil), p.Skills...),
		})
	}

	return Converted{
		Catalog:   domain.NewCatalog(skills...),
		Scenarios: scenarios,
		Profiles:  profiles,
	}
}
