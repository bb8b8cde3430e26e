// Package dataset ships the built-in study catalog: twelve skills over a
// prerequisite graph, three market scenarios, reference profiles and the
// strategic skill areas. Everything is returned freshly built so callers
// can mutate their copies freely.
package dataset

import (
	"github.com/alexanderramin/skillpath/internal/domain"
)

// ObjectiveSkill is the flagship skill most built-in analyses aim for.
const ObjectiveSkill = "S6"

// Default planning constraints used by seeded runs.
const (
	DefaultTimeBudget       = 350
	DefaultComplexityBudget = 30
)

// DefaultTargets are the value targets swept by the pivot study.
func DefaultTargets() []float64 {
	return []float64{12, 14, 15, 16, 18}
}

// DefaultBudget is the stock constraint set: 350 hours of study time and
// 30 points of complexity tolerance.
func DefaultBudget() domain.Budget {
	return domain.Budget{
		domain.DimTime:       DefaultTimeBudget,
		domain.DimComplexity: DefaultComplexityBudget,
	}
}

// DefaultCatalog returns the built-in skill catalog.
func DefaultCatalog() domain.Catalog {
	return domain.NewCatalog(
		skill("S1", "Core Programming", 3, 80, 4, 0.9, false),
		skill("S2", "Data Modeling and SQL", 4, 60, 3, 0.8, false),
		skill("S3", "Advanced Algorithms", 7, 100, 8, 0.7, true, "S1"),
		skill("S4", "Machine Learning Foundations", 8, 120, 9, 0.85, false, "S1", "S3"),
		skill("S5", "Data Visualization", 6, 40, 5, 0.75, true, "S2"),
		skill("S6", "Applied Generative AI", 10, 150, 10, 0.95, false, "S4"),
		skill("S7", "Cloud Infrastructure", 5, 70, 7, 0.8, true),
		skill("S8", "APIs and Microservices", 6, 90, 6, 0.7, true, "S1"),
		skill("S9", "DevOps and CI/CD", 9, 110, 8, 0.85, true, "S7", "S8"),
		skill("H10", "Data Security", 5, 60, 6, 0.9, false),
		skill("H11", "Big Data Analytics", 8, 90, 8, 0.75, false, "S4"),
		skill("H12", "IoT Fundamentals", 3, 30, 3, 0.6, false),
	)
}

// DefaultScenarios returns the three market scenarios the outlook
// analyses weigh. Probabilities sum to 1.
func DefaultScenarios() []domain.Scenario {
	return []domain.Scenario{
		{
			Name:        "ai_shift",
			Probability: 0.40,
			Boosted:     []string{"S4", "S6", "H11"},
			Penalized:   []string{"S2", "S5"},
			BoostFactor: 1.30,
			Description: "Accelerated adoption of AI and machine learning",
		},
		{
			Name:        "cloud_first",
			Probability: 0.35,
			Boosted:     []string{"S7", "S9", "H10"},
			Penalized:   []string{"S1", "S3"},
			BoostFactor: 1.25,
			Description: "Massive expansion of cloud infrastructure",
		},
		{
			Name:        "balanced_fullstack",
			Probability: 0.25,
			Boosted:     []string{"S1", "S8", "S5"},
			Penalized:   []string{},
			BoostFactor: 1.15,
			Description: "Even demand across full-stack skills",
		},
	}
}

// DefaultProfiles returns the reference career profiles used by the
// recommendation walkthroughs.
func DefaultProfiles() []domain.Profile {
	return []domain.Profile{
		{Name: "beginner", SkillIDs: []string{}},
		{Name: "junior_dev", SkillIDs: []string{"S1"}},
		{Name: "data_analyst", SkillIDs: []string{"S1", "S2", "S5"}},
		{Name: "backend_dev", SkillIDs: []string{"S1", "S3", "S8"}},
		{Name: "cloud_specialist", SkillIDs: []string{"S1", "S7", "S8"}},
	}
}

// DefaultAreas returns the strategic skill areas used by gap analysis.
func DefaultAreas() []domain.Area {
	return []domain.Area{
		{Name: "programming", SkillIDs: []string{"S1", "S3", "S8"}},
		{Name: "data_ml", SkillIDs: []string{"S2", "S4", "S5", "S6", "H11"}},
		{Name: "cloud_devops", SkillIDs: []string{"S7", "S9"}},
		{Name: "security", SkillIDs: []string{"H10"}},
		{Name: "emerging", SkillIDs: []string{"H12"}},
	}
}

func skill(id, name string, value, time, complexity, demand float64, critical bool, prereqs ...string) domain.Skill {
	return domain.Skill{
		ID:    id,
		Name:  name,
		Value: value,
		Costs: map[string]float64{
			domain.DimTime:       time,
			domain.DimComplexity: complexity,
		},
		Prereqs:  prereqs,
		Demand:   demand,
		Critical: critical,
	}
}
