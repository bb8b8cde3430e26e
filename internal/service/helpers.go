package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
)

// loadCatalog reads the stored skills into a catalog. An empty store is a
// request error: every analysis needs at least one skill to work on.
func loadCatalog(ctx context.Context, skills repository.SkillRepo) (domain.Catalog, error) {
	list, err := skills.List(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("loading catalog: %w", err)
	}
	if len(list) == 0 {
		return domain.Catalog{}, &app.RequestError{
			Code:    app.ErrEmptyCatalog,
			Message: "the catalog is empty; run 'skillpath seed' or 'skillpath import' first",
		}
	}
	return domain.NewCatalog(list...), nil
}

// resolveBudget picks the request limits when given, the default budget
// otherwise. The returned budget is a copy.
func resolveBudget(limits map[string]float64, fallback domain.Budget) domain.Budget {
	src := limits
	if len(src) == 0 {
		src = fallback
	}
	budget := make(domain.Budget, len(src))
	for dim, limit := range src {
		budget[dim] = limit
	}
	return budget
}

// checkKnownSkills verifies every identifier against the catalog.
func checkKnownSkills(catalog domain.Catalog, ids []string) error {
	for _, id := range ids {
		if !catalog.Contains(id) {
			return &app.RequestError{
				Code:    app.ErrUnknownSkill,
				Message: fmt.Sprintf("skill %q is not in the catalog", id),
			}
		}
	}
	return nil
}

// skillNames maps identifiers to display names for the given catalog.
func skillNames(catalog domain.Catalog) map[string]string {
	names := make(map[string]string, catalog.Len())
	for _, s := range catalog.Skills {
		names[s.ID] = s.Name
	}
	return names
}

// skillView flattens a skill for presentation.
func skillView(s domain.Skill) app.SkillView {
	return app.SkillView{
		ID:         s.ID,
		Name:       s.Name,
		Value:      s.Value,
		Costs:      s.Costs,
		Prereqs:    s.Prereqs,
		Demand:     s.Demand,
		Critical:   s.Critical,
		Basic:      s.IsBasic(),
		Efficiency: s.Ratio(),
	}
}

// buildPlanResult expands a raw plan into its per-skill breakdown and
// budget utilization, ready for rendering.
func buildPlanResult(catalog domain.Catalog, budget domain.Budget, plan domain.Plan, goal string) app.PlanResult {
	result := app.PlanResult{
		Plan:   plan,
		Budget: budget,
		Goal:   goal,
	}

	elapsed := 0.0
	for i, id := range plan.Sequence {
		s, _ := catalog.ByID(id)
		elapsed += s.TimeCost()
		result.Lines = append(result.Lines, app.PlanSkillLine{
			Position:    i + 1,
			ID:          s.ID,
			Name:        s.Name,
			Value:       s.Value,
			Costs:       s.Costs,
			ElapsedTime: elapsed,
		})
	}

	dims := make([]string, 0, len(budget))
	for dim := range budget {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	for _, dim := range dims {
		usage := app.DimensionUsage{
			Dimension: dim,
			Used:      plan.CostTotals[dim],
			Capacity:  budget[dim],
		}
		if usage.Capacity > 0 {
			usage.Fraction = usage.Used / usage.Capacity
		}
		result.Utilization = append(result.Utilization, usage)
	}
	return result
}
