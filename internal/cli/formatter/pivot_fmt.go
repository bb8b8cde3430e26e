package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// FormatPivots renders the greedy-versus-optimal strategy comparison over
// foundation skills, one row per value target, plus every point where the
// greedy heuristic loses.
func FormatPivots(report *contract.PivotReport) string {
	var b strings.Builder

	study := report.Study

	b.WriteString(fmt.Sprintf("%s %s\n\n",
		Dim("GREEDY CRITERION:"),
		StylePurple.Render(string(report.Criterion)),
	))

	headers := []string{"TARGET", "GREEDY", "TIME", "MET", "OPTIMAL", "TIME", "MET"}
	rows := make([][]string, 0, len(study.Targets))
	for i, target := range study.Targets {
		greedy := study.Greedy[i][report.Criterion]
		optimal := study.Optimal[i]
		rows = append(rows, []string{
			Bold(FormatNumber(target)),
			StyleFg.Render(FormatNumber(greedy.Value)),
			StyleBlue.Render(FormatHours(greedy.Time)),
			CheckMark(greedy.TargetMet),
			StyleFg.Render(FormatNumber(optimal.Value)),
			StyleBlue.Render(FormatHours(optimal.Time)),
			CheckMark(optimal.TargetMet),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	if len(study.Counterexamples) == 0 {
		b.WriteString(StyleGreen.Render("Greedy matched the optimum at every target.") + "\n")
	} else {
		b.WriteString(Header("Where Greedy Loses"))
		b.WriteString("\n")
		for _, ce := range study.Counterexamples {
			b.WriteString(fmt.Sprintf("%s  %s\n",
				counterexampleBadge(ce.Kind),
				StyleFg.Render(fmt.Sprintf("target %s", FormatNumber(ce.Target))),
			))
			b.WriteString(fmt.Sprintf("   %s %s %s  %s %s %s\n",
				Dim("greedy"),
				StyleFg.Render(JoinIDs(ce.Greedy.SkillIDs)),
				Dim(fmt.Sprintf("(value %s, %s)", FormatNumber(ce.Greedy.Value), FormatHours(ce.Greedy.Time))),
				Dim("optimal"),
				StyleGreen.Render(JoinIDs(ce.Optimal.SkillIDs)),
				Dim(fmt.Sprintf("(value %s, %s)", FormatNumber(ce.Optimal.Value), FormatHours(ce.Optimal.Time))),
			))
			b.WriteString(fmt.Sprintf("   %s\n",
				Dim(fmt.Sprintf("value gap %s, time gap %s", FormatSigned(ce.ValueGap), FormatSigned(ce.TimeGap))),
			))
		}
	}

	return RenderBox("Pivot Study", b.String())
}

// counterexampleBadge labels how the greedy run fell short.
func counterexampleBadge(kind domain.CounterexampleKind) string {
	switch kind {
	case domain.CounterMissedTarget:
		return StyleRed.Render("▲ MISSED TARGET")
	case domain.CounterExtraTime:
		return StyleYellow.Render("▲ EXTRA TIME")
	case domain.CounterExcessValue:
		return StyleYellow.Render("▲ EXCESS VALUE")
	default:
		return StyleDim.Render("▲ " + strings.ToUpper(string(kind)))
	}
}
