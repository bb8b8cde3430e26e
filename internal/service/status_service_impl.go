package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
)

type statusService struct {
	skills  repository.SkillRepo
	outlook repository.OutlookRepo
	runs    repository.PlanRunRepo
}

func NewStatusService(
	skills repository.SkillRepo,
	outlook repository.OutlookRepo,
	runs repository.PlanRunRepo,
) StatusService {
	return &statusService{skills: skills, outlook: outlook, runs: runs}
}

func (s *statusService) Status(ctx context.Context) (*contract.StatusReport, error) {
	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	catalog := domain.NewCatalog(skills...)
	report := &contract.StatusReport{
		SkillCount:    catalog.Len(),
		BasicCount:    len(catalog.Basics()),
		CriticalCount: len(catalog.CriticalIDs()),
		Dimensions:    catalog.Dimensions(),
	}
	if err := catalog.Validate(); err != nil {
		var invalid *domain.InvalidCatalogError
		if !errors.As(err, &invalid) {
			return nil, err
		}
		report.Issues = invalid.Issues
	} else {
		report.CatalogValid = true
	}

	scenarios, err := s.outlook.ListScenarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}
	profiles, err := s.outlook.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}
	report.ScenarioCount = len(scenarios)
	report.ProfileCount = len(profiles)

	report.RunCount, err = s.runs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting plan runs: %w", err)
	}
	if report.RunCount > 0 {
		latest, err := s.runs.List(ctx, 1)
		if err != nil {
			return nil, fmt.Errorf("loading latest plan run: %w", err)
		}
		if len(latest) > 0 {
			report.LastRun = &latest[0]
		}
	}

	return report, nil
}
