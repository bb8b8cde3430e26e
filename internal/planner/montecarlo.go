package planner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Simulation defaults. A perturbation of 0.10 draws every noisy figure
// uniformly from [90%, 110%] of its catalog value.
const (
	DefaultTrials       = 1000
	DefaultPerturbation = 0.10
	DefaultSeed         = 42
)

// Robustness classification thresholds on the coefficient of variation.
const (
	cvVeryHigh = 0.05
	cvHigh     = 0.10
	cvModerate = 0.20
)

// Agreement classification thresholds on the relative difference, in
// percent, between the deterministic plan value and the simulated mean.
const (
	diffConvergent = 2.0
	diffClose      = 5.0
	diffModerate   = 10.0
)

// Confidence classification thresholds on the trial success rate.
const (
	successHigh   = 0.9
	successMedium = 0.7
)

// SimulationInput configures a Monte Carlo study of a selection problem.
// Zero fields fall back to the package defaults; NoisyDims defaults to
// perturbing only the time dimension, leaving complexity as cataloged.
type SimulationInput struct {
	Catalog      domain.Catalog
	Budget       domain.Budget
	Required     []string
	Trials       int
	Perturbation float64
	NoisyDims    []string
	Seed         int64
}

// SimulationResult aggregates the plan values observed across trials.
type SimulationResult struct {
	Trials      int
	Feasible    int
	SuccessRate float64

	MeanValue     float64
	StdValue      float64
	MinValue      float64
	MaxValue      float64
	CoefVariation float64
	CI95Low       float64
	CI95High      float64

	MeanCosts  map[string]float64
	Robustness domain.RobustnessClass
}

// RobustnessComparison relates a deterministic selection to a simulation
// of the same problem.
type RobustnessComparison struct {
	PlanValue    float64
	SimulatedAvg float64
	AbsoluteDiff float64
	RelativeDiff float64
	Agreement    domain.AgreementClass
	Confidence   domain.ConfidenceClass
}

// Simulate reruns the selector over randomly perturbed copies of the
// catalog and reports how stable the optimal value is. Skill values and
// the noisy cost dimensions are each scaled by an independent uniform
// factor in [1-p, 1+p] per trial. Trials whose required skills become
// infeasible count against the success rate instead of failing the run.
func Simulate(in SimulationInput) (SimulationResult, error) {
	g, err := NewGraph(in.Catalog)
	if err != nil {
		return SimulationResult{}, err
	}
	if err := in.Budget.Validate(); err != nil {
		return SimulationResult{}, err
	}

	trials := in.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	perturbation := in.Perturbation
	if perturbation <= 0 {
		perturbation = DefaultPerturbation
	}
	if perturbation >= 1 {
		return SimulationResult{}, fmt.Errorf("perturbation %.2f leaves no positive range", perturbation)
	}
	noisy := in.NoisyDims
	if len(noisy) == 0 {
		noisy = []string{domain.DimTime}
	}
	seed := in.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	var opts []Option
	if len(in.Required) > 0 {
		opts = append(opts, WithRequired(in.Required...))
	}

	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, 0, trials)
	costSums := make(map[string]float64)

	for t := 0; t < trials; t++ {
		perturbed := g.clone(func(s domain.Skill) domain.Skill {
			out := s
			out.Value = s.Value * factor(rng, perturbation)
			out.Costs = make(map[string]float64, len(s.Costs))
			for d, c := range s.Costs {
				out.Costs[d] = c
			}
			for _, d := range noisy {
				if c, ok := out.Costs[d]; ok {
					out.Costs[d] = c * factor(rng, perturbation)
				}
			}
			return out
		})

		plan, err := perturbed.Select(in.Budget, opts...)
		if errors.Is(err, ErrNoFeasiblePlan) {
			continue
		}
		if err != nil {
			return SimulationResult{}, err
		}
		values = append(values, plan.TotalValue)
		for d, c := range plan.CostTotals {
			costSums[d] += c
		}
	}

	result := SimulationResult{
		Trials:      trials,
		Feasible:    len(values),
		SuccessRate: float64(len(values)) / float64(trials),
		MeanCosts:   make(map[string]float64, len(costSums)),
	}
	if len(values) == 0 {
		result.Robustness = domain.RobustnessLow
		return result, nil
	}

	result.MeanValue = mean(values)
	result.StdValue = stddev(values, result.MeanValue)
	result.MinValue, result.MaxValue = bounds(values)
	if result.MeanValue != 0 {
		result.CoefVariation = result.StdValue / result.MeanValue
	}
	margin := 1.96 * result.StdValue / math.Sqrt(float64(len(values)))
	result.CI95Low = result.MeanValue - margin
	result.CI95High = result.MeanValue + margin
	for d, sum := range costSums {
		result.MeanCosts[d] = sum / float64(len(values))
	}
	result.Robustness = RobustnessFor(result.CoefVariation)
	return result, nil
}

// CompareRobustness checks how closely a simulation tracks the
// deterministic plan it perturbs.
func CompareRobustness(plan domain.Plan, sim SimulationResult) RobustnessComparison {
	cmp := RobustnessComparison{
		PlanValue:    plan.TotalValue,
		SimulatedAvg: sim.MeanValue,
		AbsoluteDiff: sim.MeanValue - plan.TotalValue,
		Confidence:   ConfidenceFor(sim.SuccessRate),
	}
	if plan.TotalValue != 0 {
		cmp.RelativeDiff = math.Abs(cmp.AbsoluteDiff) / plan.TotalValue * 100
	}
	cmp.Agreement = AgreementFor(cmp.RelativeDiff)
	return cmp
}

// RobustnessFor classifies a coefficient of variation.
func RobustnessFor(cv float64) domain.RobustnessClass {
	switch {
	case cv < cvVeryHigh:
		return domain.RobustnessVeryHigh
	case cv < cvHigh:
		return domain.RobustnessHigh
	case cv < cvModerate:
		return domain.RobustnessModerate
	default:
		return domain.RobustnessLow
	}
}

// AgreementFor classifies a relative difference given in percent.
func AgreementFor(relDiff float64) domain.AgreementClass {
	switch {
	case relDiff < diffConvergent:
		return domain.AgreementConvergent
	case relDiff < diffClose:
		return domain.AgreementClose
	case relDiff < diffModerate:
		return domain.AgreementModerate
	default:
		return domain.AgreementDivergent
	}
}

// ConfidenceFor classifies a trial success rate.
func ConfidenceFor(successRate float64) domain.ConfidenceClass {
	switch {
	case successRate > successHigh:
		return domain.ConfidenceHigh
	case successRate > successMedium:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func factor(rng *rand.Rand, perturbation float64) float64 {
	return 1 - perturbation + 2*perturbation*rng.Float64()
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation.
func stddev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

func bounds(values []float64) (min, max float64) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[0], sorted[len(sorted)-1]
}
