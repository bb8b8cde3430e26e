package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RobustnessIndicator returns a colored badge such as "● VERY HIGH" for a
// simulation's value-stability class.
func RobustnessIndicator(class domain.RobustnessClass) string {
	switch class {
	case domain.RobustnessVeryHigh:
		return StyleGreen.Render("● VERY HIGH")
	case domain.RobustnessHigh:
		return StyleGreen.Render("● HIGH")
	case domain.RobustnessModerate:
		return StyleYellow.Render("● MODERATE")
	case domain.RobustnessLow:
		return StyleRed.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// AgreementIndicator returns a colored badge for how closely the simulated
// mean tracks the deterministic optimum.
func AgreementIndicator(class domain.AgreementClass) string {
	switch class {
	case domain.AgreementConvergent:
		return StyleGreen.Render("● CONVERGENT")
	case domain.AgreementClose:
		return StyleBlue.Render("● CLOSE")
	case domain.AgreementModerate:
		return StyleYellow.Render("● MODERATE")
	case domain.AgreementDivergent:
		return StyleRed.Render("▲ DIVERGENT")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ConfidenceIndicator returns a colored badge for the trial success rate.
func ConfidenceIndicator(class domain.ConfidenceClass) string {
	switch class {
	case domain.ConfidenceHigh:
		return StyleGreen.Render("● HIGH")
	case domain.ConfidenceMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.ConfidenceLow:
		return StyleRed.Render("▲ LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// BalanceIndicator returns a colored badge for a sprint partition.
func BalanceIndicator(balanced bool) string {
	if balanced {
		return StyleGreen.Render("● BALANCED")
	}
	return StyleRed.Render("▲ UNBALANCED")
}

// GapBadge returns a colored badge for a skill-area gap priority.
func GapBadge(priority domain.GapPriority) string {
	if priority == domain.GapHigh {
		return StyleRed.Render("● HIGH")
	}
	return StyleYellow.Render("● MEDIUM")
}

// MethodBadge returns a styled label for the recommendation method used.
func MethodBadge(method domain.RecommendMethod) string {
	switch method {
	case domain.MethodHorizon:
		return StylePurple.Render("HORIZON")
	case domain.MethodLookahead:
		return StylePurple.Render("LOOKAHEAD")
	default:
		return StylePurple.Render(strings.ToUpper(string(method)))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
