package cli

import (
	"testing"

	"github.com/alexanderramin/skillpath/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededExplorer(t *testing.T) *teatest.Harness {
	t.Helper()
	app := testApp(t)
	seedCatalog(t, app)
	return teatest.NewHarness(t, newExplorer(app))
}

func TestExplorer_ListsCatalog(t *testing.T) {
	h := seededExplorer(t)

	view := h.View()
	assert.Contains(t, view, "SKILL CATALOG")
	assert.Contains(t, view, "S1")
	assert.Contains(t, view, "Core Programming")
	assert.Contains(t, view, "IoT Fundamentals")
	assert.Contains(t, view, "● CRITICAL")
	assert.Contains(t, view, "enter detail")
}

func TestExplorer_EmptyCatalog(t *testing.T) {
	app := testApp(t)
	h := teatest.NewHarness(t, newExplorer(app))

	assert.Contains(t, h.View(), "No skills match.")
}

func TestExplorer_FilterNarrowsList(t *testing.T) {
	h := seededExplorer(t)

	h.Press("/")
	h.Type("cloud")

	view := h.View()
	assert.Contains(t, view, "Cloud Infrastructure")
	assert.NotContains(t, view, "Core Programming")

	h.Press("enter")
	assert.Contains(t, h.View(), "Cloud Infrastructure")
}

func TestExplorer_FilterEscRestoresList(t *testing.T) {
	h := seededExplorer(t)

	h.Press("/")
	h.Type("cloud")
	h.Press("esc")

	view := h.View()
	assert.Contains(t, view, "Core Programming")
	assert.Contains(t, view, "Cloud Infrastructure")
}

func TestExplorer_DetailShowsSkillCard(t *testing.T) {
	h := seededExplorer(t)

	h.Press("/")
	h.Type("generative")
	h.Press("enter")
	h.Press("enter")

	view := h.View()
	assert.Contains(t, view, "APPLIED GENERATIVE AI")
	assert.Contains(t, view, "VALUE")
	assert.Contains(t, view, "DEMAND")
	assert.Contains(t, view, "Efficiency:")
	assert.Contains(t, view, "value/hour")
	assert.Contains(t, view, "Requires: S4")
}

func TestExplorer_DetailEscReturnsToList(t *testing.T) {
	h := seededExplorer(t)

	h.Press("enter")
	h.Press("esc")

	assert.Contains(t, h.View(), "SKILL CATALOG")
}

func TestExplorer_PlanScreen(t *testing.T) {
	h := seededExplorer(t)

	h.Press("p")

	view := h.View()
	assert.Contains(t, view, "Total value: 26")
	assert.Contains(t, view, "(6 skills)")
	assert.Contains(t, view, "BUDGET UTILIZATION")
}

func TestExplorer_SimulateScreen(t *testing.T) {
	h := seededExplorer(t)

	h.Press("s")

	view := h.View()
	assert.Contains(t, view, "MONTE CARLO")
	assert.Contains(t, view, "VERDICT")
}

func TestExplorer_SimulateResultIsCached(t *testing.T) {
	h := seededExplorer(t)

	h.Press("s")
	first := h.View()
	require.Contains(t, first, "MONTE CARLO")

	h.Press("esc")
	h.Press("s")
	assert.Equal(t, first, h.View())
}

func TestExplorer_QuitFromList(t *testing.T) {
	h := seededExplorer(t)

	h.Press("q")
	assert.True(t, h.Quit())
}

func TestExplorer_CtrlCQuitsAnywhere(t *testing.T) {
	h := seededExplorer(t)

	h.Press("/")
	h.Press("ctrl+c")
	assert.True(t, h.Quit())
}
