package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
)

// FormatRecommendation renders what to learn next for one profile: the
// planned skills, their market context, and the gaps they leave open.
func FormatRecommendation(report *contract.RecommendReport) string {
	var b strings.Builder

	rec := report.Recommendation

	profile := report.ProfileName
	if profile == "" {
		profile = "ad hoc"
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s %s\n",
		Dim("PROFILE:"),
		Bold(profile),
		Dim("METHOD:"),
		MethodBadge(rec.Method),
		Dim(fmt.Sprintf("(%d years, %d states explored)", rec.Years, rec.StatesExplored)),
	))
	if len(report.Acquired) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("ACQUIRED:"), StyleFg.Render(strings.Join(report.Acquired, ", "))))
	} else {
		b.WriteString(Dim("ACQUIRED: none") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Learn Next"))
	b.WriteString("\n")
	if len(rec.Recommended) == 0 {
		b.WriteString(Dim("Nothing to recommend; every reachable skill is acquired.") + "\n")
	} else {
		for i, id := range rec.Recommended {
			name := report.Names[id]
			b.WriteString(fmt.Sprintf("%s %s  %s\n",
				Bold(fmt.Sprintf("%d.", i+1)),
				StyleGreen.Render(id),
				StyleFg.Render(name),
			))
		}
		if len(rec.FullPath) > len(rec.Recommended) {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim("Full path:"), Dim(JoinIDs(rec.FullPath))))
		}
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s   %s\n",
		Dim("Expected value:"),
		StyleGreen.Render(FormatNumber(rec.ExpectedValue)),
		Dim(fmt.Sprintf("hours %s used, %s left", FormatNumber(rec.HoursUsed), FormatNumber(rec.HoursLeft))),
	))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("Alignment:"),
		StyleFg.Render(FormatPercent(rec.MeanAlignment)),
		Dim("ROI:"),
		StyleFg.Render(fmt.Sprintf("%.4f", rec.ExpectedROI)),
	))
	if rec.FavorableScenario != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Favorable scenario:"), StylePurple.Render(rec.FavorableScenario)))
	}
	if len(rec.GapsCovered) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Gaps covered:"), StyleGreen.Render(strings.Join(rec.GapsCovered, ", "))))
	}

	if len(rec.Gaps) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Skill Gaps"))
		b.WriteString("\n")
		for _, gap := range rec.Gaps {
			b.WriteString(fmt.Sprintf("%s  %s  %s\n",
				GapBadge(gap.Priority),
				Bold(gap.Area.Name),
				Dim(fmt.Sprintf("%s covered, missing %s", FormatPercent(gap.Coverage), strings.Join(gap.Missing, ", "))),
			))
		}
	}

	return RenderBox("Recommendation", b.String())
}

// FormatProfileComparisons renders the stored profiles side by side.
func FormatProfileComparisons(comparisons []contract.ProfileComparison) string {
	if len(comparisons) == 0 {
		return RenderBox("Profiles", Dim("No profiles stored. Run `skillpath seed` or import a catalog."))
	}

	headers := []string{"PROFILE", "METHOD", "LEARN NEXT", "E[VALUE]", "ALIGNMENT", "ROI", "GAPS"}
	rows := make([][]string, 0, len(comparisons))
	for _, c := range comparisons {
		next := Dim("—")
		if len(c.Recommended) > 0 {
			next = StyleGreen.Render(JoinIDs(c.Recommended))
		}
		rows = append(rows, []string{
			Bold(c.Profile.Name),
			MethodBadge(c.Method),
			next,
			StyleFg.Render(FormatNumber(c.ExpectedValue)),
			StyleFg.Render(FormatPercent(c.Alignment)),
			StyleFg.Render(fmt.Sprintf("%.4f", c.ROI)),
			gapCountCell(c.GapCount),
		})
	}

	return RenderBox("Profiles", RenderTable(headers, rows))
}

func gapCountCell(count int) string {
	if count == 0 {
		return StyleGreen.Render("0")
	}
	return StyleYellow.Render(fmt.Sprintf("%d", count))
}
