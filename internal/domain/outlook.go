package domain

// Scenario is one plausible market development with its probability and
// the skills it rewards or punishes.
type Scenario struct {
	Name        string
	Probability float64
	Boosted     []string
	Penalized   []string
	BoostFactor float64
	Description string
}

func (s Scenario) Boosts(id string) bool {
	return containsID(s.Boosted, id)
}

func (s Scenario) Penalizes(id string) bool {
	return containsID(s.Penalized, id)
}

// Profile is a named set of already-acquired skills.
type Profile struct {
	Name     string
	SkillIDs []string
}

func (p Profile) Has(id string) bool {
	return containsID(p.SkillIDs, id)
}

// Area is a strategic grouping of skills used for gap analysis.
type Area struct {
	Name     string
	SkillIDs []string
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
