package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/dataset"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/planner"
	"github.com/alexanderramin/skillpath/internal/repository"
)

// DefaultHistoryLimit caps history listings when the caller passes no limit.
const DefaultHistoryLimit = 10

type planService struct {
	skills   repository.SkillRepo
	runs     repository.PlanRunRepo
	observer UseCaseObserver
}

func NewPlanService(
	skills repository.SkillRepo,
	runs repository.PlanRunRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		skills:   skills,
		runs:     runs,
		observer: composeObservers(observers),
	}
}

// Optimize runs the selector against the stored catalog and, when asked,
// records the outcome as a plan run.
func (s *planService) Optimize(ctx context.Context, req contract.PlanRequest) (result *contract.PlanResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal": req.Goal, "save": req.Save},
		})
	}()

	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}
	budget := resolveBudget(req.Limits, dataset.DefaultBudget())

	var opts []planner.Option
	if req.Goal != "" {
		if err := checkKnownSkills(catalog, []string{req.Goal}); err != nil {
			return nil, err
		}
		opts = append(opts, planner.WithRequired(req.Goal))
	}

	plan, err := planner.Select(catalog, budget, opts...)
	if err != nil {
		return nil, err
	}

	res := buildPlanResult(catalog, budget, plan, req.Goal)

	if req.Save {
		run := domain.PlanRun{
			ID:         uuid.New().String(),
			Label:      req.Label,
			CreatedAt:  time.Now().UTC(),
			Goal:       req.Goal,
			Budget:     budget,
			Sequence:   plan.Sequence,
			TotalValue: plan.TotalValue,
			CostTotals: plan.CostTotals,
		}
		if err := s.runs.Save(ctx, run); err != nil {
			return nil, fmt.Errorf("saving plan run: %w", err)
		}
		res.SavedRunID = run.ID
	}

	return &res, nil
}

func (s *planService) History(ctx context.Context, limit int) ([]domain.PlanRun, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.runs.List(ctx, limit)
}

func (s *planService) Run(ctx context.Context, id string) (*domain.PlanRun, error) {
	run, err := s.runs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
