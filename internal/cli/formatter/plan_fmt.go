package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// FormatPlan renders an optimal selection as a styled plan card: the
// acquisition order, per-skill costs, and budget utilization bars.
func FormatPlan(res *contract.PlanResult) string {
	var b strings.Builder

	b.WriteString(budgetLine(res.Budget))
	b.WriteString("\n")
	if res.Goal != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("GOAL:"), StylePurple.Render(res.Goal)))
	}
	b.WriteString("\n")

	if res.Plan.IsEmpty() {
		b.WriteString(Dim("No skill fits this budget.") + "\n")
		return RenderBox("Optimal Plan", b.String())
	}

	dims := res.Budget.Dimensions()

	headers := []string{"#", "SKILL", "NAME", "VALUE"}
	for _, dim := range dims {
		headers = append(headers, strings.ToUpper(dim))
	}
	headers = append(headers, "ELAPSED")

	rows := make([][]string, 0, len(res.Lines))
	for _, line := range res.Lines {
		row := []string{
			Dim(fmt.Sprintf("%d", line.Position)),
			StyleGreen.Render(line.ID),
			StyleFg.Render(line.Name),
			Bold(FormatNumber(line.Value)),
		}
		for _, dim := range dims {
			row = append(row, StyleFg.Render(FormatNumber(line.Costs[dim])))
		}
		row = append(row, StyleBlue.Render(FormatHours(line.ElapsedTime)))
		rows = append(rows, row)
	}

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleGreen.Render(fmt.Sprintf("Total value: %s", FormatNumber(res.Plan.TotalValue))),
		Dim(fmt.Sprintf("(%d skills)", len(res.Plan.Sequence))),
	))

	b.WriteString("\n")
	b.WriteString(Header("Budget Utilization"))
	b.WriteString("\n")
	b.WriteString(formatUtilization(res.Utilization))

	if res.SavedRunID != "" {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Saved as run"), TruncID(res.SavedRunID)))
	}

	return RenderBox("Optimal Plan", b.String())
}

// budgetLine renders the budget caps as "BUDGET: complexity ≤ 30, time ≤ 350".
func budgetLine(budget domain.Budget) string {
	parts := make([]string, 0, len(budget))
	for _, dim := range budget.Dimensions() {
		parts = append(parts, fmt.Sprintf("%s ≤ %s", dim, FormatNumber(budget[dim])))
	}
	return fmt.Sprintf("%s %s", Dim("BUDGET:"), StyleFg.Render(strings.Join(parts, ", ")))
}

// formatUtilization renders one usage bar per budget dimension.
func formatUtilization(usage []contract.DimensionUsage) string {
	if len(usage) == 0 {
		return ""
	}

	widest := 0
	for _, u := range usage {
		if len(u.Dimension) > widest {
			widest = len(u.Dimension)
		}
	}

	var b strings.Builder
	for _, u := range usage {
		name := u.Dimension + strings.Repeat(" ", widest-len(u.Dimension))
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleFg.Render(name),
			RenderUsageBar(u.Fraction, 12),
			Dim(fmt.Sprintf("%s / %s", FormatNumber(u.Used), FormatNumber(u.Capacity))),
		))
	}
	return b.String()
}
