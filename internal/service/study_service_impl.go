package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/dataset"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/planner"
	"github.com/alexanderramin/skillpath/internal/repository"
)

type studyService struct {
	skills   repository.SkillRepo
	observer UseCaseObserver
}

func NewStudyService(skills repository.SkillRepo, observers ...UseCaseObserver) StudyService {
	return &studyService{
		skills:   skills,
		observer: composeObservers(observers),
	}
}

// SequenceStudy ranks every acquisition order of the requested skills.
// With no skills given, the catalog's critical set is studied.
func (s *studyService) SequenceStudy(ctx context.Context, req contract.SequenceRequest) (report *contract.SequenceReport, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "sequence",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}

	ids := req.SkillIDs
	if len(ids) == 0 {
		ids = catalog.CriticalIDs()
	}
	if err := checkKnownSkills(catalog, ids); err != nil {
		return nil, err
	}

	study, err := planner.StudySequences(catalog, ids)
	if err != nil {
		return nil, err
	}

	return &contract.SequenceReport{Study: study, Names: skillNames(catalog)}, nil
}

// PivotStudy compares greedy foundation strategies against the exhaustive
// optimum across a ladder of value targets.
func (s *studyService) PivotStudy(ctx context.Context, req contract.PivotRequest) (report *contract.PivotReport, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "pivot",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	criterion := req.Criterion
	if criterion == "" {
		criterion = string(domain.PivotByRatio)
	}
	if !domain.ValidPivotCriteria[criterion] {
		return nil, &app.RequestError{
			Code:    app.ErrInvalidCriterion,
			Message: fmt.Sprintf("unknown pivot criterion %q", criterion),
		}
	}

	targets := req.Targets
	if len(targets) == 0 {
		targets = dataset.DefaultTargets()
	}
	for _, target := range targets {
		if target <= 0 {
			return nil, &app.RequestError{
				Code:    app.ErrInvalidTarget,
				Message: fmt.Sprintf("value targets must be positive, got %g", target),
			}
		}
	}

	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return &contract.PivotReport{
		Criterion: domain.PivotCriterion(criterion),
		Study:     planner.StudyPivots(catalog, targets),
	}, nil
}

// SprintPartition sorts the catalog by the criterion and splits it into
// two consecutive sprints, cross-checking the sort implementations.
func (s *studyService) SprintPartition(ctx context.Context, req contract.SprintRequest) (report *contract.SprintReport, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "sprints",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	criterion := req.Criterion
	if criterion == "" {
		criterion = string(domain.SortByComplexity)
	}
	if !domain.ValidSortCriteria[criterion] {
		return nil, &app.RequestError{
			Code:    app.ErrInvalidCriterion,
			Message: fmt.Sprintf("unknown sort criterion %q", criterion),
		}
	}
	if req.Size < 0 {
		return nil, &app.RequestError{
			Code:    app.ErrInvalidSize,
			Message: fmt.Sprintf("sprint size must be positive, got %d", req.Size),
		}
	}

	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}

	sortBy := domain.SortCriterion(criterion)
	sorted := planner.MergeSortSkills(catalog.Skills, sortBy)

	result := &contract.SprintReport{
		Criterion:     sortBy,
		Partition:     planner.PartitionSprints(sorted, req.Size),
		SortAgreement: planner.SortsAgree(catalog.Skills, sortBy),
	}
	for _, sk := range sorted {
		result.Sorted = append(result.Sorted, skillView(sk))
	}
	return result, nil
}
