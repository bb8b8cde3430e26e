package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/planner"
)

// FormatSprints renders the sorted catalog and its two-sprint split.
func FormatSprints(report *contract.SprintReport) string {
	var b strings.Builder

	agreement := StyleGreen.Render("sorts agree ✔")
	if !report.SortAgreement {
		agreement = StyleRed.Render("sorts disagree ✖")
	}
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		Dim("SORTED BY:"),
		StylePurple.Render(string(report.Criterion)),
		Dim("(")+agreement+Dim(")"),
	))

	headers := []string{"#", "SKILL", "NAME", "VALUE", "TIME", "COMPLEXITY"}
	rows := make([][]string, 0, len(report.Sorted))
	for i, s := range report.Sorted {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			StyleGreen.Render(s.ID),
			StyleFg.Render(s.Name),
			StyleFg.Render(FormatNumber(s.Value)),
			StyleBlue.Render(FormatHours(s.Costs["time"])),
			StyleFg.Render(FormatNumber(s.Costs["complexity"])),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	b.WriteString(Header("Sprint Split"))
	b.WriteString("\n")
	b.WriteString(formatSprintRow("Sprint 1", report.Partition.First))
	b.WriteString(formatSprintRow("Sprint 2", report.Partition.Second))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s\n",
		Dim("Time gap:"),
		StyleFg.Render(FormatHours(report.Partition.TimeGap)),
		Dim("Complexity gap:"),
		StyleFg.Render(FormatNumber(report.Partition.ComplexityGap)),
		BalanceIndicator(report.Partition.Balanced),
	))

	return RenderBox("Sprint Partition", b.String())
}

// formatSprintRow renders one sprint's membership and workload summary.
func formatSprintRow(label string, m planner.SprintMetrics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n",
		Bold(label),
		StyleFg.Render(strings.Join(m.SkillIDs, ", ")),
	))
	b.WriteString(fmt.Sprintf("   %s\n",
		Dim(fmt.Sprintf("%d skills, %s, value %s, complexity %s (mean %.1f), efficiency %.4f",
			m.Count,
			FormatHours(m.TotalTime),
			FormatNumber(m.TotalValue),
			FormatNumber(m.TotalComplexity),
			m.MeanComplexity,
			m.MeanEfficiency,
		)),
	))
	return b.String()
}
