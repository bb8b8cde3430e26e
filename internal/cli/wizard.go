package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/dataset"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// skillpathHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func skillpathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validatePositiveFloat accepts empty or a positive number.
func validatePositiveFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// wizardBudgetForm prompts for one capacity per cost dimension. Empty
// answers leave the dimension unconstrained.
func wizardBudgetForm(dims []string, defaults domain.Budget, values []string) *huh.Form {
	fields := make([]huh.Field, 0, len(dims))
	for i, dim := range dims {
		input := huh.NewInput().
			Title(fmt.Sprintf("Limit for %s", dim)).
			Description("Leave empty for no limit").
			Value(&values[i]).
			Validate(validatePositiveFloat)
		if capacity, ok := defaults[dim]; ok {
			input = input.Placeholder(formatter.FormatNumber(capacity))
		}
		fields = append(fields, input)
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(skillpathHuhTheme()).WithShowHelp(false)
}

// wizardGoalForm selects a skill the plan must include.
func wizardGoalForm(skills []contract.SkillView, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(skills)+1)
	options = append(options, huh.NewOption("(no goal)", ""))
	for _, s := range skills {
		options = append(options, huh.NewOption(fmt.Sprintf("%s — %s", s.ID, s.Name), s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Goal Skill?").
				Options(options...).
				Value(result),
		),
	).WithTheme(skillpathHuhTheme()).WithShowHelp(false)
}

// wizardSaveForm asks whether to record the plan and under what label.
func wizardSaveForm(save *bool, label *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this plan as a run?").
				Affirmative("Yes").
				Negative("No").
				Value(save),
			huh.NewInput().
				Title("Label").
				Description("Optional name for the saved run").
				Value(label),
		),
	).WithTheme(skillpathHuhTheme()).WithShowHelp(false)
}

// runPlanWizard fills the request interactively: one capacity per budget
// dimension, a goal pick from the catalog, and a save step. Flag values
// already on the request become the wizard's starting answers.
func runPlanWizard(ctx context.Context, app *App, req *contract.PlanRequest) error {
	list, err := app.Catalog.List(ctx)
	if err != nil {
		return err
	}

	dims := list.Dimensions
	defaults := dataset.DefaultBudget()

	values := make([]string, len(dims))
	for i, dim := range dims {
		if capacity, ok := req.Limits[dim]; ok {
			values[i] = formatter.FormatNumber(capacity)
		}
	}
	if err := wizardBudgetForm(dims, defaults, values).RunWithContext(ctx); err != nil {
		return err
	}

	goal := req.Goal
	if err := wizardGoalForm(list.Skills, &goal).RunWithContext(ctx); err != nil {
		return err
	}

	save, label := req.Save, req.Label
	if err := wizardSaveForm(&save, &label).RunWithContext(ctx); err != nil {
		return err
	}

	limits := make(map[string]float64, len(dims))
	for i, dim := range dims {
		if values[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(values[i], 64)
		if err != nil || v <= 0 {
			continue
		}
		limits[dim] = v
	}
	if len(limits) > 0 {
		req.Limits = limits
	}
	req.Goal = goal
	req.Save = save
	req.Label = label
	return nil
}
