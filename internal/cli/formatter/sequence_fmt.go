package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
)

// How many orderings the sequence report shows.
const topSequences = 5

// FormatSequences renders a permutation study: the cheapest acquisition
// orders for a set of skills and the spread across all orderings.
func FormatSequences(report *contract.SequenceReport) string {
	var b strings.Builder

	study := report.Study

	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		Dim("SKILLS:"),
		StyleFg.Render(strings.Join(study.Skills, ", ")),
		Dim(fmt.Sprintf("(%d orderings)", study.Permutations)),
	))

	b.WriteString(Header("Best Orderings"))
	b.WriteString("\n")

	headers := []string{"#", "ORDER", "COMPLETION", "EFFICIENCY"}
	rows := make([][]string, 0, topSequences)
	for i, plan := range study.Top(topSequences) {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			StyleFg.Render(JoinIDs(plan.Order)),
			StyleBlue.Render(FormatHours(plan.CompletionCost)),
			Dim(fmt.Sprintf("%.4f", plan.Efficiency)),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if best := study.Top(1); len(best) == 1 && len(best[0].Expanded) > len(best[0].Order) {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n",
			Dim("With prerequisites:"),
			StyleGreen.Render(JoinIDs(best[0].Expanded)),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		Dim("Best:"), StyleGreen.Render(FormatHours(study.BestCost)),
		Dim("Mean:"), StyleFg.Render(FormatHours(study.MeanCost)),
		Dim("Worst:"), StyleRed.Render(FormatHours(study.WorstCost)),
	))
	b.WriteString(Dim(fmt.Sprintf("Every ordering studies the same %s of material.", FormatHours(study.TotalTime))) + "\n")

	return RenderBox("Sequence Study", b.String())
}
