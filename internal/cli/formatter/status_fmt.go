package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
)

// FormatStatus renders the workspace overview: what is stored and whether
// the catalog is ready for planning.
func FormatStatus(report *contract.StatusReport) string {
	var b strings.Builder

	if report.SkillCount == 0 {
		b.WriteString(Dim("The catalog is empty. Run `skillpath seed` or `skillpath import <file>`.") + "\n")
		return RenderBox("Status", b.String())
	}

	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Dim("CATALOG:"),
		Bold(fmt.Sprintf("%d skills", report.SkillCount)),
		Dim(fmt.Sprintf("(%d foundation, %d critical)", report.BasicCount, report.CriticalCount)),
	))
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("DIMENSIONS:"),
		StyleFg.Render(strings.Join(report.Dimensions, ", ")),
	))

	b.WriteString(fmt.Sprintf("%s %s", Dim("VALID:"), CheckMark(report.CatalogValid)))
	b.WriteString("\n")
	for _, issue := range report.Issues {
		b.WriteString(fmt.Sprintf("   %s %s\n", StyleRed.Render("✖"), StyleFg.Render(issue)))
	}

	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("SCENARIOS:"),
		StyleFg.Render(fmt.Sprintf("%d", report.ScenarioCount)),
		Dim("PROFILES:"),
		StyleFg.Render(fmt.Sprintf("%d", report.ProfileCount)),
	))

	b.WriteString("\n")
	if report.RunCount == 0 {
		b.WriteString(Dim("No saved plan runs yet.") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n",
			Dim("SAVED RUNS:"),
			StyleFg.Render(fmt.Sprintf("%d", report.RunCount)),
		))
		if run := report.LastRun; run != nil {
			label := run.Label
			if label == "" {
				label = "(unlabeled)"
			}
			b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
				Dim("LATEST:"),
				Bold(label),
				StyleGreen.Render(fmt.Sprintf("value %s", FormatNumber(run.TotalValue))),
				Dim(HumanTimestamp(run.CreatedAt)),
			))
		}
	}

	return RenderBox("Status", b.String())
}
