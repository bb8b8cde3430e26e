package contract

import "github.com/alexanderramin/skillpath/internal/app"

type SimulateRequest = app.SimulateRequest

func NewSimulateRequest(limits map[string]float64) SimulateRequest {
	return app.NewSimulateRequest(limits)
}

type SimulationReport = app.SimulationReport
