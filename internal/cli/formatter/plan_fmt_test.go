package formatter

import (
	"testing"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlan_RendersLinesAndUtilization(t *testing.T) {
	res := &contract.PlanResult{
		Plan: domain.Plan{
			Sequence:   []string{"S1", "S3"},
			TotalValue: 15,
			CostTotals: map[string]float64{"time": 180, "complexity": 10},
		},
		Budget: domain.Budget{"time": 350, "complexity": 30},
		Lines: []contract.PlanSkillLine{
			{Position: 1, ID: "S1", Name: "Go Fundamentals", Value: 8, Costs: map[string]float64{"time": 80, "complexity": 4}, ElapsedTime: 80},
			{Position: 2, ID: "S3", Name: "Distributed Systems", Value: 7, Costs: map[string]float64{"time": 100, "complexity": 6}, ElapsedTime: 180},
		},
		Utilization: []contract.DimensionUsage{
			{Dimension: "complexity", Used: 10, Capacity: 30, Fraction: 1.0 / 3},
			{Dimension: "time", Used: 180, Capacity: 350, Fraction: 180.0 / 350},
		},
	}

	out := FormatPlan(res)
	assert.Contains(t, out, "OPTIMAL PLAN")
	assert.Contains(t, out, "time ≤ 350")
	assert.Contains(t, out, "Go Fundamentals")
	assert.Contains(t, out, "Distributed Systems")
	assert.Contains(t, out, "Total value: 15")
	assert.Contains(t, out, "BUDGET UTILIZATION")
	assert.Contains(t, out, "180 / 350")
}

func TestFormatPlan_GoalAndSavedRun(t *testing.T) {
	res := &contract.PlanResult{
		Plan:       domain.Plan{Sequence: []string{"S6"}, TotalValue: 10, CostTotals: map[string]float64{"time": 150}},
		Budget:     domain.Budget{"time": 200},
		Goal:       "S6",
		Lines:      []contract.PlanSkillLine{{Position: 1, ID: "S6", Name: "Kubernetes", Value: 10, Costs: map[string]float64{"time": 150}, ElapsedTime: 150}},
		SavedRunID: "4f8a2c1d-0000-0000-0000-000000000000",
	}

	out := FormatPlan(res)
	assert.Contains(t, out, "GOAL:")
	assert.Contains(t, out, "S6")
	assert.Contains(t, out, "Saved as run")
	assert.Contains(t, out, "4f8a2c1d")
	assert.NotContains(t, out, "4f8a2c1d-0000")
}

func TestFormatPlan_EmptyPlan(t *testing.T) {
	res := &contract.PlanResult{
		Plan:   domain.Plan{},
		Budget: domain.Budget{"time": 1},
	}

	out := FormatPlan(res)
	assert.Contains(t, out, "No skill fits this budget.")
}
