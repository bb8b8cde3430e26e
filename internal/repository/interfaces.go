package repository

import (
	"context"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// SkillRepo stores the skill catalog. The catalog is replaced wholesale on
// seed/import; there is no per-skill mutation, matching the domain's
// immutable-once-loaded contract.
type SkillRepo interface {
	ReplaceAll(ctx context.Context, skills []domain.Skill) error
	List(ctx context.Context) ([]domain.Skill, error)
	Get(ctx context.Context, id string) (domain.Skill, error)
	Count(ctx context.Context) (int, error)
}

// OutlookRepo stores market scenarios and career profiles.
type OutlookRepo interface {
	ReplaceScenarios(ctx context.Context, scenarios []domain.Scenario) error
	ListScenarios(ctx context.Context) ([]domain.Scenario, error)
	ReplaceProfiles(ctx context.Context, profiles []domain.Profile) error
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	GetProfile(ctx context.Context, name string) (domain.Profile, error)
}

// PlanRunRepo stores the results of saved selector runs.
type PlanRunRepo interface {
	Save(ctx context.Context, run domain.PlanRun) error
	List(ctx context.Context, limit int) ([]domain.PlanRun, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id string) (domain.PlanRun, error)
}
