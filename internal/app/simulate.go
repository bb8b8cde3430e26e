package app

import (
	"github.com/alexanderramin/skillpath/internal/planner"
)

// SimulateRequest configures a robustness study. Zero Trials/Noise/Seed
// fall back to the planner defaults; empty Limits fall back to the stored
// catalog's default budget.
type SimulateRequest struct {
	Limits    map[string]float64
	Goal      string
	Trials    int
	Noise     float64
	Seed      int64
	NoisyDims []string
}

func NewSimulateRequest(limits map[string]float64) SimulateRequest {
	return SimulateRequest{
		Limits: limits,
		Trials: planner.DefaultTrials,
		Noise:  planner.DefaultPerturbation,
		Seed:   planner.DefaultSeed,
	}
}

// SimulationReport pairs the deterministic plan with the Monte Carlo view
// of the same problem.
type SimulationReport struct {
	Deterministic PlanResult
	Simulation    planner.SimulationResult
	Comparison    planner.RobustnessComparison
}
