package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/dataset"
	"github.com/alexanderramin/skillpath/internal/planner"
	"github.com/alexanderramin/skillpath/internal/repository"
)

type simulationService struct {
	skills   repository.SkillRepo
	observer UseCaseObserver
}

func NewSimulationService(skills repository.SkillRepo, observers ...UseCaseObserver) SimulationService {
	return &simulationService{
		skills:   skills,
		observer: composeObservers(observers),
	}
}

// Robustness solves the selection problem once deterministically, then
// re-solves it under perturbed catalogs and reports how stable the
// deterministic answer is.
func (s *simulationService) Robustness(ctx context.Context, req contract.SimulateRequest) (report *contract.SimulationReport, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "simulate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"trials": req.Trials},
		})
	}()

	if req.Trials < 0 {
		return nil, &app.RequestError{
			Code:    app.ErrInvalidTrials,
			Message: fmt.Sprintf("trials must be positive, got %d", req.Trials),
		}
	}
	if req.Noise < 0 || req.Noise >= 1 {
		return nil, &app.RequestError{
			Code:    app.ErrInvalidNoise,
			Message: fmt.Sprintf("noise must be in [0, 1), got %g", req.Noise),
		}
	}

	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}
	budget := resolveBudget(req.Limits, dataset.DefaultBudget())

	var required []string
	var opts []planner.Option
	if req.Goal != "" {
		if err := checkKnownSkills(catalog, []string{req.Goal}); err != nil {
			return nil, err
		}
		required = []string{req.Goal}
		opts = append(opts, planner.WithRequired(req.Goal))
	}

	plan, err := planner.Select(catalog, budget, opts...)
	if err != nil {
		return nil, err
	}

	sim, err := planner.Simulate(planner.SimulationInput{
		Catalog:      catalog,
		Budget:       budget,
		Required:     required,
		Trials:       req.Trials,
		Perturbation: req.Noise,
		NoisyDims:    req.NoisyDims,
		Seed:         req.Seed,
	})
	if err != nil {
		return nil, err
	}

	return &contract.SimulationReport{
		Deterministic: buildPlanResult(catalog, budget, plan, req.Goal),
		Simulation:    sim,
		Comparison:    planner.CompareRobustness(plan, sim),
	}, nil
}
