package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/skillpath/internal/domain"
)

func sprintSkills() []domain.Skill {
	return []domain.Skill{
		{ID: "S1", Value: 5, Costs: map[string]float64{domain.DimTime: 10, domain.DimComplexity: 1}},
		{ID: "S2", Value: 6, Costs: map[string]float64{domain.DimTime: 12, domain.DimComplexity: 2}},
		{ID: "S3", Value: 7, Costs: map[string]float64{domain.DimTime: 8, domain.DimComplexity: 3}},
		{ID: "S4", Value: 8, Costs: map[string]float64{domain.DimTime: 15, domain.DimComplexity: 4}},
		{ID: "S5", Value: 9, Costs: map[string]float64{domain.DimTime: 20, domain.DimComplexity: 5}},
		{ID: "S6", Value: 10, Costs: map[string]float64{domain.DimTime: 25, domain.DimComplexity: 6}},
		{ID: "S7", Value: 11, Costs: map[string]float64{domain.DimTime: 30, domain.DimComplexity: 7}},
		{ID: "S8", Value: 12, Costs: map[string]float64{domain.DimTime: 35, domain.DimComplexity: 8}},
	}
}

func skillIDs(skills []domain.Skill) []string {
	ids := make([]string, len(skills))
	for i, s := range skills {
		ids[i] = s.ID
	}
	return ids
}

func TestMergeSortSkills_ByTimeAscending(t *testing.T) {
	sorted := MergeSortSkills(sprintSkills(), domain.SortByTime)

	assert.Equal(t, []string{"S3", "S1", "S2", "S4", "S5", "S6", "S7", "S8"}, skillIDs(sorted))
}

func TestMergeSortSkills_Stable(t *testing.T) {
	skills := []domain.Skill{
		{ID: "B", Value: 1, Costs: map[string]float64{domain.DimComplexity: 5}},
		{ID: "A", Value: 2, Costs: map[string]float64{domain.DimComplexity: 5}},
		{ID: "C", Value: 3, Costs: map[string]float64{domain.DimComplexity: 1}},
	}

	sorted := MergeSortSkills(skills, domain.SortByComplexity)

	assert.Equal(t, []string{"C", "B", "A"}, skillIDs(sorted), "equal keys keep input order")
}

func TestMergeSortSkills_InputUntouched(t *testing.T) {
	skills := sprintSkills()

	MergeSortSkills(skills, domain.SortByTime)

	assert.Equal(t, "S1", skills[0].ID, "sorting must not reorder the input slice")
}

func TestQuickSortSkills_AgreesWithMergeSort(t *testing.T) {
	skills := sprintSkills()
	// Inject ties so the agreement check covers the three-way partition.
	skills = append(skills,
		domain.Skill{ID: "T1", Value: 9, Costs: map[string]float64{domain.DimTime: 20, domain.DimComplexity: 5}},
		domain.Skill{ID: "T2", Value: 3, Costs: map[string]float64{domain.DimTime: 20, domain.DimComplexity: 2}},
	)

	for _, criterion := range []domain.SortCriterion{
		domain.SortByComplexity, domain.SortByTime, domain.SortByValue, domain.SortByRatio,
	} {
		merged := MergeSortSkills(skills, criterion)
		quick := QuickSortSkills(skills, criterion)
		assert.Equal(t, skillIDs(merged), skillIDs(quick), "criterion %s", criterion)
	}
}

func TestQuickSortSkills_ByRatioAscending(t *testing.T) {
	skills := []domain.Skill{
		{ID: "H", Value: 10, Costs: map[string]float64{domain.DimTime: 2}},  // 5.0
		{ID: "L", Value: 2, Costs: map[string]float64{domain.DimTime: 4}},   // 0.5
		{ID: "M", Value: 6, Costs: map[string]float64{domain.DimTime: 3}},   // 2.0
		{ID: "Z", Value: 99, Costs: map[string]float64{domain.DimTime: 0}},  // no time, ratio 0
	}

	sorted := QuickSortSkills(skills, domain.SortByRatio)

	assert.Equal(t, []string{"Z", "L", "M", "H"}, skillIDs(sorted))
}

func TestPartitionSprints_FirstSixAndRest(t *testing.T) {
	sorted := MergeSortSkills(sprintSkills(), domain.SortByComplexity)

	partition := PartitionSprints(sorted, DefaultSprintSize)

	assert.Equal(t, []string{"S1", "S2", "S3", "S4", "S5", "S6"}, partition.First.SkillIDs)
	assert.Equal(t, []string{"S7", "S8"}, partition.Second.SkillIDs)
	assert.Equal(t, 6, partition.First.Count)
	assert.Equal(t, 2, partition.Second.Count)
}

func TestPartitionSprints_MetricsAndBalance(t *testing.T) {
	sorted := MergeSortSkills(sprintSkills(), domain.SortByComplexity)

	partition := PartitionSprints(sorted, 6)

	assert.Equal(t, 90.0, partition.First.TotalTime)
	assert.Equal(t, 65.0, partition.Second.TotalTime)
	assert.Equal(t, 21.0, partition.First.TotalComplexity)
	assert.Equal(t, 15.0, partition.Second.TotalComplexity)
	assert.Equal(t, 3.5, partition.First.MeanComplexity)
	assert.Equal(t, 25.0, partition.TimeGap)
	assert.Equal(t, 6.0, partition.ComplexityGap)
	assert.True(t, partition.Balanced)
	assert.Greater(t, partition.First.MeanEfficiency, 0.0)
}

func TestPartitionSprints_UnbalancedWorkloads(t *testing.T) {
	skills := sprintSkills()
	skills[7].Costs[domain.DimTime] = 300

	partition := PartitionSprints(MergeSortSkills(skills, domain.SortByComplexity), 6)

	assert.False(t, partition.Balanced)
	assert.Greater(t, partition.TimeGap, balancedTimeGap)
}

func TestPartitionSprints_ZeroSizeUsesDefault(t *testing.T) {
	partition := PartitionSprints(MergeSortSkills(sprintSkills(), domain.SortByComplexity), 0)

	assert.Equal(t, DefaultSprintSize, partition.First.Count)
}

func TestPartitionSprints_ShortListLeavesSecondEmpty(t *testing.T) {
	skills := sprintSkills()[:3]

	partition := PartitionSprints(skills, 6)

	assert.Equal(t, 3, partition.First.Count)
	assert.Zero(t, partition.Second.Count)
	assert.Zero(t, partition.Second.MeanComplexity)
}
