package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/domain"
)

func sequenceCatalog() domain.Catalog {
	return domain.NewCatalog(
		domain.Skill{ID: "A", Value: 10, Costs: map[string]float64{domain.DimTime: 2}},
		domain.Skill{ID: "B", Value: 15, Costs: map[string]float64{domain.DimTime: 3}, Prereqs: []string{"A"}},
		domain.Skill{ID: "C", Value: 8, Costs: map[string]float64{domain.DimTime: 1}},
	)
}

func TestStudySequences_EnumeratesAllPermutations(t *testing.T) {
	study, err := StudySequences(sequenceCatalog(), []string{"A", "B", "C"})
	require.NoError(t, err)

	assert.Equal(t, 6, study.Permutations)
	assert.Len(t, study.Ranked, 6)
}

func TestStudySequences_TotalTimeInvariantAcrossOrderings(t *testing.T) {
	study, err := StudySequences(sequenceCatalog(), []string{"B", "C"})
	require.NoError(t, err)

	for _, plan := range study.Ranked {
		assert.Equal(t, 6.0, plan.TotalTime,
			"every ordering acquires the same closure once: %v", plan.Order)
	}
	assert.Equal(t, 6.0, study.TotalTime)
}

func TestStudySequences_FrontLoadingCheapSkillsWins(t *testing.T) {
	// C first finishes C at hour 1 and B at hour 6 (cost 7); B first
	// finishes B at hour 5 and C at hour 6 (cost 11).
	study, err := StudySequences(sequenceCatalog(), []string{"B", "C"})
	require.NoError(t, err)

	require.Len(t, study.Ranked, 2)
	assert.Equal(t, []string{"C", "B"}, study.Ranked[0].Order)
	assert.Equal(t, 7.0, study.Ranked[0].CompletionCost)
	assert.Equal(t, []string{"B", "C"}, study.Ranked[1].Order)
	assert.Equal(t, 11.0, study.Ranked[1].CompletionCost)

	assert.Equal(t, 7.0, study.BestCost)
	assert.Equal(t, 11.0, study.WorstCost)
	assert.Equal(t, 9.0, study.MeanCost)
}

func TestStudySequences_EfficiencyRelativeToBest(t *testing.T) {
	study, err := StudySequences(sequenceCatalog(), []string{"B", "C"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, study.Ranked[0].Efficiency)
	assert.InDelta(t, 7.0/11.0, study.Ranked[1].Efficiency, 1e-9)
}

func TestStudySequences_ExpandedPullsPrerequisitesIn(t *testing.T) {
	study, err := StudySequences(sequenceCatalog(), []string{"B"})
	require.NoError(t, err)

	require.Len(t, study.Ranked, 1)
	assert.Equal(t, []string{"A", "B"}, study.Ranked[0].Expanded)
	assert.Equal(t, 5.0, study.Ranked[0].TotalTime)
}

func TestStudySequences_TooManySkills(t *testing.T) {
	skills := make([]domain.Skill, 9)
	ids := make([]string, 9)
	for i := range skills {
		id := fmt.Sprintf("S%d", i)
		skills[i] = domain.Skill{ID: id, Value: 1, Costs: map[string]float64{domain.DimTime: 1}}
		ids[i] = id
	}

	_, err := StudySequences(domain.NewCatalog(skills...), ids)

	require.ErrorIs(t, err, ErrSequenceTooLong)
}

func TestStudySequences_UnknownSkill(t *testing.T) {
	_, err := StudySequences(sequenceCatalog(), []string{"A", "ZZ"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZZ")
}

func TestStudySequences_DuplicateSkill(t *testing.T) {
	_, err := StudySequences(sequenceCatalog(), []string{"A", "A"})

	require.Error(t, err)
}

func TestStudySequences_NoSkills(t *testing.T) {
	_, err := StudySequences(sequenceCatalog(), nil)

	require.Error(t, err)
}

func TestSequenceStudy_TopClampsToAvailable(t *testing.T) {
	study, err := StudySequences(sequenceCatalog(), []string{"B", "C"})
	require.NoError(t, err)

	assert.Len(t, study.Top(1), 1)
	assert.Len(t, study.Top(10), 2)
}
