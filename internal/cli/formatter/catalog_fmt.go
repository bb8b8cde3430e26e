package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
)

// FormatCatalog renders the stored catalog as a table.
func FormatCatalog(result *contract.CatalogListResult) string {
	if len(result.Skills) == 0 {
		return RenderBox("Catalog", Dim("The catalog is empty. Run `skillpath seed` or `skillpath import <file>`."))
	}

	headers := []string{"SKILL", "NAME", "VALUE", "TIME", "COMPLEXITY", "DEMAND", "PREREQS", ""}
	rows := make([][]string, 0, len(result.Skills))
	for _, s := range result.Skills {
		prereqs := Dim("—")
		if len(s.Prereqs) > 0 {
			prereqs = StyleFg.Render(strings.Join(s.Prereqs, ", "))
		}
		rows = append(rows, []string{
			StyleGreen.Render(s.ID),
			StyleFg.Render(s.Name),
			Bold(FormatNumber(s.Value)),
			StyleBlue.Render(FormatHours(s.Costs["time"])),
			StyleFg.Render(FormatNumber(s.Costs["complexity"])),
			StyleFg.Render(FormatPercent(s.Demand)),
			prereqs,
			skillTags(s),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d skills, dimensions: %s", len(result.Skills), strings.Join(result.Dimensions, ", "))) + "\n")

	return RenderBox("Catalog", b.String())
}

// skillTags renders the catalog-role badges of one skill.
func skillTags(s contract.SkillView) string {
	var tags []string
	if s.Critical {
		tags = append(tags, StyleRed.Render("CRITICAL"))
	}
	if s.Basic {
		tags = append(tags, StyleBlue.Render("FOUNDATION"))
	}
	return strings.Join(tags, " ")
}

// FormatSkill renders one skill as a detail card.
func FormatSkill(s *contract.SkillView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(s.Name), StyleGreen.Render("["+s.ID+"]")))
	if tags := skillTags(*s); tags != "" {
		b.WriteString(tags + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("VALUE     "), Bold(FormatNumber(s.Value))))
	for _, dim := range sortedCostDims(s.Costs) {
		label := strings.ToUpper(dim)
		if len(label) < 10 {
			label += strings.Repeat(" ", 10-len(label))
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim(label), StyleFg.Render(FormatNumber(s.Costs[dim]))))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("DEMAND    "), StyleFg.Render(FormatPercent(s.Demand))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("EFFICIENCY"), StyleFg.Render(fmt.Sprintf("%.4f", s.Efficiency))))

	if len(s.Prereqs) > 0 {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("REQUIRES  "), StylePurple.Render(strings.Join(s.Prereqs, ", "))))
	}

	return RenderBox("Skill", b.String())
}

// FormatValidation renders the catalog invariant check outcome.
func FormatValidation(report *contract.ValidationReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("SKILLS:"),
		StyleFg.Render(fmt.Sprintf("%d", report.SkillCount)),
		Dim("VALID:"),
		CheckMark(report.Valid),
	))

	if len(report.Issues) > 0 {
		b.WriteString("\n")
		for _, issue := range report.Issues {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleRed.Render("✖"), StyleFg.Render(issue)))
		}
	} else {
		b.WriteString(StyleGreen.Render("Every catalog invariant holds.") + "\n")
	}

	return RenderBox("Validation", b.String())
}

// FormatStats renders aggregate catalog statistics.
func FormatStats(stats *contract.CatalogStats) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Dim("SKILLS:"),
		Bold(fmt.Sprintf("%d", stats.SkillCount)),
		Dim(fmt.Sprintf("(%d foundation, %d critical)", stats.BasicCount, stats.CriticalCount)),
	))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("DIMENSIONS:"), StyleFg.Render(strings.Join(stats.Dimensions, ", "))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s   %s %s\n",
		Dim("TOTAL:"),
		StyleGreen.Render("value "+FormatNumber(stats.TotalValue)),
		StyleBlue.Render(FormatHours(stats.TotalTime)),
		Dim("MEAN:"),
		StyleFg.Render(fmt.Sprintf("value %s, %s", FormatNumber(stats.MeanValue), FormatHours(stats.MeanTime))),
	))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("SCENARIOS:"),
		StyleFg.Render(fmt.Sprintf("%d", stats.ScenarioCount)),
		Dim("PROFILES:"),
		StyleFg.Render(fmt.Sprintf("%d", stats.ProfileCount)),
	))

	return RenderBox("Catalog Stats", b.String())
}
