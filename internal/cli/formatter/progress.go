package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUsageBar renders a budget utilization bar like [████░░░░] 45%.
// Heavily used budget renders green, light usage dims toward red; capacity
// overruns are clamped at 100%.
func RenderUsageBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if fraction < 0.33 {
		style = StyleRed
	} else if fraction < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), fraction*100)
}
