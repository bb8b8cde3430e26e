package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/dataset"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/planner"
)

func TestSimulationService_Robustness_StockBudget(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewSimulationService(skills)

	req := contract.NewSimulateRequest(nil)
	req.Trials = 200

	report, err := svc.Robustness(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 26.0, report.Deterministic.Plan.TotalValue)
	assert.Equal(t, 200, report.Simulation.Trials)
	assert.Equal(t, 200, report.Simulation.Feasible, "no goal means every trial solves")
	assert.Equal(t, 1.0, report.Simulation.SuccessRate)
	assert.InDelta(t, 26.0, report.Simulation.MeanValue, 3.0)
	assert.Less(t, report.Simulation.CoefVariation, 0.15)
	assert.LessOrEqual(t, report.Simulation.MinValue, report.Simulation.MeanValue)
	assert.GreaterOrEqual(t, report.Simulation.MaxValue, report.Simulation.MeanValue)

	assert.Equal(t, 26.0, report.Comparison.PlanValue)
	assert.Equal(t, domain.ConfidenceHigh, report.Comparison.Confidence)
	assert.NotEmpty(t, report.Simulation.Robustness)
	assert.NotEmpty(t, report.Comparison.Agreement)
}

func TestSimulationService_Robustness_DeterministicForSeed(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewSimulationService(skills)
	ctx := context.Background()

	req := contract.NewSimulateRequest(nil)
	req.Trials = 100
	req.Seed = 7

	first, err := svc.Robustness(ctx, req)
	require.NoError(t, err)
	second, err := svc.Robustness(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Simulation.MeanValue, second.Simulation.MeanValue)
	assert.Equal(t, first.Simulation.StdValue, second.Simulation.StdValue)
	assert.Equal(t, first.Simulation.MinValue, second.Simulation.MinValue)
}

func TestSimulationService_Robustness_InvalidTrials(t *testing.T) {
	skills, _, _, _ := setupRepos(t)
	svc := NewSimulationService(skills)

	req := contract.NewSimulateRequest(nil)
	req.Trials = -5

	_, err := svc.Robustness(context.Background(), req)
	requireRequestError(t, err, contract.ErrInvalidTrials)
}

func TestSimulationService_Robustness_InvalidNoise(t *testing.T) {
	skills, _, _, _ := setupRepos(t)
	svc := NewSimulationService(skills)

	req := contract.NewSimulateRequest(nil)
	req.Noise = 1.0

	_, err := svc.Robustness(context.Background(), req)
	requireRequestError(t, err, contract.ErrInvalidNoise)
}

func TestSimulationService_Robustness_InfeasibleGoal(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewSimulationService(skills)

	req := contract.NewSimulateRequest(nil)
	req.Goal = dataset.ObjectiveSkill

	_, err := svc.Robustness(context.Background(), req)
	require.ErrorIs(t, err, planner.ErrNoFeasiblePlan)
}

func TestSimulationService_Robustness_GoalSuccessRate(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewSimulationService(skills)

	// The flagship chain fits with lots of slack, so most noisy trials
	// keep it feasible.
	req := contract.NewSimulateRequest(map[string]float64{
		domain.DimTime:       600,
		domain.DimComplexity: 40,
	})
	req.Goal = dataset.ObjectiveSkill
	req.Trials = 100

	report, err := svc.Robustness(context.Background(), req)
	require.NoError(t, err)

	assert.Greater(t, report.Simulation.SuccessRate, 0.9)
	assert.Contains(t, report.Deterministic.Plan.Sequence, dataset.ObjectiveSkill)
}
