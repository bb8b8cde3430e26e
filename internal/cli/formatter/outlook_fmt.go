package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/contract"
)

// FormatOutlook renders every stored market scenario with the skills it
// makes worth learning, ranked by projected value.
func FormatOutlook(report *contract.OutlookReport) string {
	if len(report.Trends) == 0 {
		return RenderBox("Market Outlook", Dim("No scenarios stored. Run `skillpath seed` or import a catalog."))
	}

	var b strings.Builder

	for i, trend := range report.Trends {
		sc := trend.Scenario
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleHeader.Render(strings.ToUpper(sc.Name)),
			Dim(fmt.Sprintf("probability %s, boost ×%s, impact %s",
				FormatPercent(sc.Probability),
				FormatNumber(sc.BoostFactor),
				FormatNumber(trend.Impact),
			)),
		))
		if sc.Description != "" {
			b.WriteString(Dim(sc.Description) + "\n")
		}

		if len(trend.Priority) == 0 {
			b.WriteString(Dim("No boosted skills in the catalog.") + "\n")
		} else {
			headers := []string{"SKILL", "NAME", "POTENTIAL", "TIME"}
			rows := make([][]string, 0, len(trend.Priority))
			for _, skill := range trend.Priority {
				rows = append(rows, []string{
					StyleGreen.Render(skill.ID),
					StyleFg.Render(skill.Name),
					Bold(FormatNumber(skill.Potential)),
					StyleBlue.Render(FormatHours(skill.Time)),
				})
			}
			b.WriteString(RenderTable(headers, rows))
		}

		if i < len(report.Trends)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Market Outlook", b.String())
}
