package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// exploreMode switches the explorer between its screens.
type exploreMode int

const (
	modeList exploreMode = iota
	modeDetail
	modePlan
	modeSimulate
)

// catalogLoadedMsg signals that the skill catalog has been loaded.
type catalogLoadedMsg struct {
	skills []contract.SkillView
	err    error
}

// planReadyMsg carries the optimal plan for the default budget.
type planReadyMsg struct {
	result *contract.PlanResult
	err    error
}

// simulationReadyMsg carries a finished Monte Carlo run.
type simulationReadyMsg struct {
	report *contract.SimulationReport
	err    error
}

// explorer is an interactive, navigable browser over the skill catalog:
// a filterable list, a per-skill detail card, and plan/simulate screens
// computed against the default budget.
type explorer struct {
	app  *App
	mode exploreMode

	skills  []contract.SkillView
	cursor  int
	loading bool
	err     error

	// Filtering
	filtering bool
	filter    textinput.Model

	// Detail
	selected contract.SkillView
	maxValue float64
	maxTime  float64
	bar      progress.Model

	// Plan / simulate
	plan       *contract.PlanResult
	simulating bool
	spin       spinner.Model
	simulation *contract.SimulationReport
}

func newExplorer(app *App) *explorer {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.PromptStyle = formatter.StyleYellow
	ti.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleYellow

	bar := progress.New(
		progress.WithGradient(string(formatter.ColorYellow), string(formatter.ColorGreen)),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)

	return &explorer{
		app:     app,
		loading: true,
		filter:  ti,
		spin:    sp,
		bar:     bar,
	}
}

func (m *explorer) Init() tea.Cmd {
	return m.loadCatalog()
}

func (m *explorer) loadCatalog() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		list, err := app.Catalog.List(context.Background())
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		return catalogLoadedMsg{skills: list.Skills}
	}
}

func (m *explorer) runPlan() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		result, err := app.Plans.Optimize(context.Background(), contract.NewPlanRequest(nil))
		return planReadyMsg{result: result, err: err}
	}
}

func (m *explorer) runSimulation() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		report, err := app.Simulations.Robustness(context.Background(), contract.NewSimulateRequest(nil))
		return simulationReadyMsg{report: report, err: err}
	}
}

func (m *explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.skills = msg.skills
		for _, s := range m.skills {
			if s.Value > m.maxValue {
				m.maxValue = s.Value
			}
			if t := s.Costs["time"]; t > m.maxTime {
				m.maxTime = t
			}
		}
		return m, nil

	case planReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			m.mode = modeList
			return m, nil
		}
		m.plan = msg.result
		return m, nil

	case simulationReadyMsg:
		m.simulating = false
		if msg.err != nil {
			m.err = msg.err
			m.mode = modeList
			return m, nil
		}
		m.simulation = msg.report
		return m, nil

	case spinner.TickMsg:
		if !m.simulating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *explorer) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeDetail, modePlan, modeSimulate:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "backspace":
			m.mode = modeList
			m.err = nil
		}
		return m, nil
	}

	visible := m.visibleSkills()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			m.selected = visible[m.cursor]
			m.mode = modeDetail
		}
	case "/":
		m.filtering = true
		m.filter.Reset()
		return m, m.filter.Focus()
	case "p":
		m.mode = modePlan
		if m.plan == nil {
			return m, m.runPlan()
		}
	case "s":
		m.mode = modeSimulate
		if m.simulation == nil {
			m.simulating = true
			return m, tea.Batch(m.spin.Tick, m.runSimulation())
		}
	}
	return m, nil
}

func (m *explorer) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Reset()
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if n := len(m.visibleSkills()); m.cursor >= n {
		m.cursor = 0
	}
	return m, cmd
}

func (m *explorer) visibleSkills() []contract.SkillView {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.skills
	}
	var filtered []contract.SkillView
	for _, s := range m.skills {
		if strings.Contains(strings.ToLower(s.ID), query) ||
			strings.Contains(strings.ToLower(s.Name), query) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func (m *explorer) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading catalog...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) +
			"\n\n  " + m.footer("q quit")
	}

	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modePlan:
		return m.viewPlan()
	case modeSimulate:
		return m.viewSimulation()
	}
	return m.viewList()
}

func (m *explorer) viewList() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Skill Catalog") + "\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n\n")
	}

	visible := m.visibleSkills()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No skills match.") + "\n")
	}

	for i, s := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		tag := ""
		if s.Critical {
			tag = formatter.StyleRed.Render("● CRITICAL")
		} else if s.Basic {
			tag = formatter.StyleBlue.Render("● FOUNDATION")
		}

		b.WriteString(fmt.Sprintf("  %s%s %s value %-4s %5s  %s\n",
			cursor,
			formatter.StyleGreen.Render(padRight(s.ID, 4)),
			nameStyle.Render(padRight(s.Name, 26)),
			formatter.FormatNumber(s.Value),
			formatter.FormatHours(s.Costs["time"]),
			tag,
		))
	}

	b.WriteString("\n  " + m.footer("enter detail", "/ filter", "p plan", "s simulate", "q quit"))
	return b.String()
}

func (m *explorer) viewDetail() string {
	s := m.selected

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(fmt.Sprintf("%s  %s", s.ID, s.Name)) + "\n\n")

	if s.Critical {
		b.WriteString("  " + formatter.StyleRed.Render("● CRITICAL") + "\n")
	}
	if s.Basic {
		b.WriteString("  " + formatter.StyleBlue.Render("● FOUNDATION") + "\n")
	}

	b.WriteString(fmt.Sprintf("\n  %-7s %s %s\n", "VALUE",
		m.bar.ViewAs(ratioOf(s.Value, m.maxValue)),
		formatter.FormatNumber(s.Value)))
	b.WriteString(fmt.Sprintf("  %-7s %s %s\n", "TIME",
		m.bar.ViewAs(ratioOf(s.Costs["time"], m.maxTime)),
		formatter.FormatHours(s.Costs["time"])))
	b.WriteString(fmt.Sprintf("  %-7s %s %s\n", "DEMAND",
		m.bar.ViewAs(s.Demand),
		formatter.FormatNumber(s.Demand)))

	b.WriteString("\n  Efficiency: " + formatter.FormatNumber(s.Efficiency) + " value/hour\n")
	if len(s.Prereqs) > 0 {
		b.WriteString("  Requires: " + strings.Join(s.Prereqs, ", ") + "\n")
	}

	b.WriteString("\n  " + m.footer("esc back", "q quit"))
	return b.String()
}

func (m *explorer) viewPlan() string {
	if m.plan == nil {
		return "\n  " + formatter.Dim("Planning...")
	}
	return "\n" + formatter.FormatPlan(m.plan) + "\n\n  " + m.footer("esc back", "q quit")
}

func (m *explorer) viewSimulation() string {
	if m.simulating {
		return "\n  " + m.spin.View() + formatter.Dim("Running Monte Carlo trials...")
	}
	if m.simulation == nil {
		return "\n  " + formatter.Dim("No simulation yet.")
	}
	return "\n" + formatter.FormatSimulation(m.simulation) + "\n\n  " + m.footer("esc back", "q quit")
}

func (m *explorer) footer(bindings ...string) string {
	return formatter.Dim(strings.Join(bindings, "   "))
}

func ratioOf(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
