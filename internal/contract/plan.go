package contract

import "github.com/alexanderramin/skillpath/internal/app"

type PlanRequest = app.PlanRequest

func NewPlanRequest(limits map[string]float64) PlanRequest {
	return app.NewPlanRequest(limits)
}

type PlanSkillLine = app.PlanSkillLine

type PlanResult = app.PlanResult
