package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/dataset"
	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
)

type catalogService struct {
	skills   repository.SkillRepo
	outlook  repository.OutlookRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCatalogService(
	skills repository.SkillRepo,
	outlook repository.OutlookRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		skills:   skills,
		outlook:  outlook,
		uow:      uow,
		observer: composeObservers(observers),
	}
}

func (s *catalogService) List(ctx context.Context) (*contract.CatalogListResult, error) {
	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	catalog := domain.NewCatalog(skills...)
	result := &contract.CatalogListResult{Dimensions: catalog.Dimensions()}
	for _, sk := range skills {
		result.Skills = append(result.Skills, skillView(sk))
	}
	return result, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*contract.SkillView, error) {
	sk, err := s.skills.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := skillView(sk)
	return &view, nil
}

// Seed replaces the stored catalog with the built-in dataset. The whole
// write happens in one transaction so a failure leaves the store intact.
func (s *catalogService) Seed(ctx context.Context) (result *contract.SeedResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "seed",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	catalog := dataset.DefaultCatalog()
	scenarios := dataset.DefaultScenarios()
	profiles := dataset.DefaultProfiles()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.Querier) error {
		txSkills := repository.NewSQLiteSkillRepo(tx)
		txOutlook := repository.NewSQLiteOutlookRepo(tx)

		if err := txSkills.ReplaceAll(ctx, catalog.Skills); err != nil {
			return fmt.Errorf("writing skills: %w", err)
		}
		if err := txOutlook.ReplaceScenarios(ctx, scenarios); err != nil {
			return fmt.Errorf("writing scenarios: %w", err)
		}
		if err := txOutlook.ReplaceProfiles(ctx, profiles); err != nil {
			return fmt.Errorf("writing profiles: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contract.SeedResult{
		Skills:    catalog.Len(),
		Scenarios: len(scenarios),
		Profiles:  len(profiles),
	}, nil
}

func (s *catalogService) Validate(ctx context.Context) (*contract.ValidationReport, error) {
	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	report := &contract.ValidationReport{SkillCount: len(skills)}
	catalog := domain.NewCatalog(skills...)
	if err := catalog.Validate(); err != nil {
		var invalid *domain.InvalidCatalogError
		if errors.As(err, &invalid) {
			report.Issues = invalid.Issues
			return report, nil
		}
		return nil, err
	}
	report.Valid = true
	return report, nil
}

func (s *catalogService) Stats(ctx context.Context) (*contract.CatalogStats, error) {
	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}

	stats := &contract.CatalogStats{
		SkillCount:    catalog.Len(),
		BasicCount:    len(catalog.Basics()),
		CriticalCount: len(catalog.CriticalIDs()),
		Dimensions:    catalog.Dimensions(),
	}
	for _, sk := range catalog.Skills {
		stats.TotalValue += sk.Value
		stats.TotalTime += sk.TimeCost()
	}
	stats.MeanValue = stats.TotalValue / float64(catalog.Len())
	stats.MeanTime = stats.TotalTime / float64(catalog.Len())

	scenarios, err := s.outlook.ListScenarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}
	profiles, err := s.outlook.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}
	stats.ScenarioCount = len(scenarios)
	stats.ProfileCount = len(profiles)

	return stats, nil
}
