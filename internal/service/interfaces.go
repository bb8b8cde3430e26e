package service

import (
	"context"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/importer"
)

type CatalogService interface {
	List(ctx context.Context) (*contract.CatalogListResult, error)
	Get(ctx context.Context, id string) (*contract.SkillView, error)
	Seed(ctx context.Context) (*contract.SeedResult, error)
	Validate(ctx context.Context) (*contract.ValidationReport, error)
	Stats(ctx context.Context) (*contract.CatalogStats, error)
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*contract.ImportResult, error)
	ImportDocument(ctx context.Context, doc *importer.CatalogDocument) (*contract.ImportResult, error)
}

type PlanService interface {
	Optimize(ctx context.Context, req contract.PlanRequest) (*contract.PlanResult, error)
	History(ctx context.Context, limit int) ([]domain.PlanRun, error)
	Run(ctx context.Context, id string) (*domain.PlanRun, error)
}

type SimulationService interface {
	Robustness(ctx context.Context, req contract.SimulateRequest) (*contract.SimulationReport, error)
}

type StudyService interface {
	SequenceStudy(ctx context.Context, req contract.SequenceRequest) (*contract.SequenceReport, error)
	PivotStudy(ctx context.Context, req contract.PivotRequest) (*contract.PivotReport, error)
	SprintPartition(ctx context.Context, req contract.SprintRequest) (*contract.SprintReport, error)
}

type RecommendService interface {
	Outlook(ctx context.Context) (*contract.OutlookReport, error)
	ForProfile(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendReport, error)
	CompareProfiles(ctx context.Context) ([]contract.ProfileComparison, error)
}

type StatusService interface {
	Status(ctx context.Context) (*contract.StatusReport, error)
}
