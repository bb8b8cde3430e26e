package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gap between adjacent table columns.
const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Column widths come from the widest cell in each column; cells may carry
// ANSI styling, widths are measured on the visible runes.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder

	styledHeaders := make([]string, len(headers))
	for i, h := range headers {
		styledHeaders[i] = StyleHeader.Render(h)
	}
	writeRow(&b, styledHeaders, widths)

	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, separators, widths)

	for _, row := range rows {
		writeRow(&b, row, widths)
	}

	return b.String()
}

// columnWidths finds the widest visible cell per column across headers and rows.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeRow writes one padded table line. The final column is not padded,
// so styled cells never trail invisible spaces.
func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cell)
		if i == len(widths)-1 {
			break
		}
		pad := widths[i] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad+colGap))
	}
	b.WriteString("\n")
}
