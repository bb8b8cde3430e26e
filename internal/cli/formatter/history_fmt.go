package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// FormatHistory renders saved plan runs, newest first.
func FormatHistory(runs []domain.PlanRun) string {
	if len(runs) == 0 {
		return RenderBox("Plan History", Dim("No saved runs. Plan with --save to keep results."))
	}

	headers := []string{"WHEN", "RUN", "LABEL", "GOAL", "VALUE", "TIME", "SKILLS"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		label := Dim("—")
		if run.Label != "" {
			label = Bold(run.Label)
		}
		goal := Dim("—")
		if run.Goal != "" {
			goal = StylePurple.Render(run.Goal)
		}
		rows = append(rows, []string{
			Dim(HumanTimestamp(run.CreatedAt)),
			TruncID(run.ID),
			label,
			goal,
			StyleGreen.Render(FormatNumber(run.TotalValue)),
			StyleBlue.Render(FormatHours(run.CostTotals["time"])),
			StyleFg.Render(fmt.Sprintf("%d", len(run.Sequence))),
		})
	}

	return RenderBox("Plan History", RenderTable(headers, rows))
}

// FormatRunDetail renders one saved plan run in full.
func FormatRunDetail(run *domain.PlanRun) string {
	var b strings.Builder

	label := run.Label
	if label == "" {
		label = "(unlabeled)"
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		Bold(label),
		TruncID(run.ID),
		Dim(HumanTimestamp(run.CreatedAt)),
	))
	b.WriteString(budgetLine(run.Budget))
	b.WriteString("\n")
	if run.Goal != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("GOAL:"), StylePurple.Render(run.Goal)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("SEQUENCE:"), StyleGreen.Render(JoinIDs(run.Sequence))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("VALUE:"), Bold(FormatNumber(run.TotalValue))))

	costs := make([]string, 0, len(run.CostTotals))
	for _, dim := range sortedCostDims(run.CostTotals) {
		costs = append(costs, fmt.Sprintf("%s %s", dim, FormatNumber(run.CostTotals[dim])))
	}
	if len(costs) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("COSTS:"), StyleFg.Render(strings.Join(costs, ", "))))
	}

	return RenderBox("Plan Run", b.String())
}
