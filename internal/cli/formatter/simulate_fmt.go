package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
)

// FormatSimulation renders a robustness study: the deterministic optimum,
// the Monte Carlo aggregate, and how the two relate.
func FormatSimulation(report *contract.SimulationReport) string {
	var b strings.Builder

	sim := report.Simulation
	cmp := report.Comparison

	b.WriteString(budgetLine(report.Deterministic.Budget))
	b.WriteString("\n")
	if report.Deterministic.Goal != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("GOAL:"), StylePurple.Render(report.Deterministic.Goal)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Deterministic Optimum"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleGreen.Render(fmt.Sprintf("Value %s", FormatNumber(cmp.PlanValue))),
		Dim(JoinIDs(report.Deterministic.Plan.Sequence)),
	))
	b.WriteString("\n")

	b.WriteString(Header("Monte Carlo"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Dim("Trials:"),
		StyleFg.Render(fmt.Sprintf("%d", sim.Trials)),
		Dim(fmt.Sprintf("(%d feasible, success rate %s)", sim.Feasible, FormatPercent(sim.SuccessRate))),
	))
	b.WriteString(fmt.Sprintf("%s %s %s %s\n",
		Dim("Value:"),
		Bold(FormatNumber(sim.MeanValue)),
		Dim("±"),
		StyleFg.Render(FormatNumber(sim.StdValue)),
	))
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("95% CI:"),
		StyleFg.Render(fmt.Sprintf("[%s, %s]", FormatNumber(sim.CI95Low), FormatNumber(sim.CI95High))),
	))
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("Range:"),
		StyleFg.Render(fmt.Sprintf("[%s, %s]", FormatNumber(sim.MinValue), FormatNumber(sim.MaxValue))),
	))
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Dim("Variation:"),
		StyleFg.Render(FormatPercent(sim.CoefVariation)),
		RobustnessIndicator(sim.Robustness),
	))

	if len(sim.MeanCosts) > 0 {
		costs := make([]string, 0, len(sim.MeanCosts))
		for _, dim := range sortedCostDims(sim.MeanCosts) {
			costs = append(costs, fmt.Sprintf("%s %s", dim, FormatNumber(sim.MeanCosts[dim])))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Mean costs:"), StyleFg.Render(strings.Join(costs, ", "))))
	}
	b.WriteString("\n")

	b.WriteString(Header("Verdict"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s %s  %s\n",
		Dim("Plan"),
		Bold(FormatNumber(cmp.PlanValue)),
		Dim("vs simulated mean"),
		Bold(FormatNumber(cmp.SimulatedAvg)),
		Dim(fmt.Sprintf("(Δ %s, %.1f%%)", FormatNumber(cmp.AbsoluteDiff), cmp.RelativeDiff)),
	))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("Agreement:"),
		AgreementIndicator(cmp.Agreement),
		Dim("Confidence:"),
		ConfidenceIndicator(cmp.Confidence),
	))

	return RenderBox("Robustness Study", b.String())
}

func sortedCostDims(costs map[string]float64) []string {
	dims := make([]string, 0, len(costs))
	for dim := range costs {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}
