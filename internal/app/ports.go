package app

import (
	"context"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/importer"
)

type CatalogUseCase interface {
	List(ctx context.Context) (*CatalogListResult, error)
	Get(ctx context.Context, id string) (*SkillView, error)
	Seed(ctx context.Context) (*SeedResult, error)
	Validate(ctx context.Context) (*ValidationReport, error)
	Stats(ctx context.Context) (*CatalogStats, error)
}

type ImportUseCase interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportDocument(ctx context.Context, doc *importer.CatalogDocument) (*ImportResult, error)
}

type PlanUseCase interface {
	Optimize(ctx context.Context, req PlanRequest) (*PlanResult, error)
	History(ctx context.Context, limit int) ([]domain.PlanRun, error)
	Run(ctx context.Context, id string) (*domain.PlanRun, error)
}

type SimulationUseCase interface {
	Robustness(ctx context.Context, req SimulateRequest) (*SimulationReport, error)
}

type StudyUseCase interface {
	SequenceStudy(ctx context.Context, req SequenceRequest) (*SequenceReport, error)
	PivotStudy(ctx context.Context, req PivotRequest) (*PivotReport, error)
	SprintPartition(ctx context.Context, req SprintRequest) (*SprintReport, error)
}

type RecommendUseCase interface {
	Outlook(ctx context.Context) (*OutlookReport, error)
	ForProfile(ctx context.Context, req RecommendRequest) (*RecommendReport, error)
	CompareProfiles(ctx context.Context) ([]ProfileComparison, error)
}

type StatusUseCase interface {
	Status(ctx context.Context) (*StatusReport, error)
}
