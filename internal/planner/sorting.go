package planner

import (
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Sprint balance thresholds: two sprints count as balanced when their
// total times differ by less than 50 hours and their total complexities
// by less than 10 points.
const (
	balancedTimeGap       = 50.0
	balancedComplexityGap = 10.0
)

// DefaultSprintSize is how many skills the first sprint takes.
const DefaultSprintSize = 6

// SprintMetrics summarizes one sprint's workload.
type SprintMetrics struct {
	SkillIDs        []string
	Count           int
	TotalTime       float64
	TotalValue      float64
	TotalComplexity float64
	MeanComplexity  float64
	MeanEfficiency  float64
}

// SprintPartition is a sorted catalog split into two consecutive sprints.
type SprintPartition struct {
	First         SprintMetrics
	Second        SprintMetrics
	TimeGap       float64
	ComplexityGap float64
	Balanced      bool
}

// MergeSortSkills sorts skills ascending by the criterion with a stable
// merge sort. The input slice is not modified.
func MergeSortSkills(skills []domain.Skill, criterion domain.SortCriterion) []domain.Skill {
	if len(skills) <= 1 {
		out := make([]domain.Skill, len(skills))
		copy(out, skills)
		return out
	}
	mid := len(skills) / 2
	left := MergeSortSkills(skills[:mid], criterion)
	right := MergeSortSkills(skills[mid:], criterion)
	return mergeSkills(left, right, criterion)
}

func mergeSkills(left, right []domain.Skill, criterion domain.SortCriterion) []domain.Skill {
	result := make([]domain.Skill, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if sortKey(left[i], criterion) <= sortKey(right[j], criterion) {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}

// QuickSortSkills sorts skills ascending by the criterion with a
// three-way quicksort pivoting on the middle element. Equal keys keep
// their relative order. The input slice is not modified.
func QuickSortSkills(skills []domain.Skill, criterion domain.SortCriterion) []domain.Skill {
	if len(skills) <= 1 {
		out := make([]domain.Skill, len(skills))
		copy(out, skills)
		return out
	}

	pivot := sortKey(skills[len(skills)/2], criterion)
	var left, middle, right []domain.Skill
	for _, s := range skills {
		key := sortKey(s, criterion)
		switch {
		case key < pivot:
			left = append(left, s)
		case key > pivot:
			right = append(right, s)
		default:
			middle = append(middle, s)
		}
	}

	result := QuickSortSkills(left, criterion)
	result = append(result, middle...)
	return append(result, QuickSortSkills(right, criterion)...)
}

// SortsAgree reports whether merge sort, quicksort and a stable
// standard-library sort produce identical orderings for the criterion.
func SortsAgree(skills []domain.Skill, criterion domain.SortCriterion) bool {
	merged := MergeSortSkills(skills, criterion)
	quick := QuickSortSkills(skills, criterion)
	std := make([]domain.Skill, len(skills))
	copy(std, skills)
	sort.SliceStable(std, func(i, j int) bool {
		return sortKey(std[i], criterion) < sortKey(std[j], criterion)
	})

	for i := range merged {
		if merged[i].ID != quick[i].ID || merged[i].ID != std[i].ID {
			return false
		}
	}
	return true
}

// PartitionSprints splits an already sorted skill list into a first
// sprint of the given size and a second sprint holding the rest, and
// checks whether the two workloads are balanced.
func PartitionSprints(sorted []domain.Skill, size int) SprintPartition {
	if size <= 0 {
		size = DefaultSprintSize
	}
	if size > len(sorted) {
		size = len(sorted)
	}

	partition := SprintPartition{
		First:  sprintMetrics(sorted[:size]),
		Second: sprintMetrics(sorted[size:]),
	}
	partition.TimeGap = abs(partition.First.TotalTime - partition.Second.TotalTime)
	partition.ComplexityGap = abs(partition.First.TotalComplexity - partition.Second.TotalComplexity)
	partition.Balanced = partition.TimeGap < balancedTimeGap && partition.ComplexityGap < balancedComplexityGap
	return partition
}

func sprintMetrics(skills []domain.Skill) SprintMetrics {
	m := SprintMetrics{Count: len(skills)}
	efficient := 0
	for _, s := range skills {
		m.SkillIDs = append(m.SkillIDs, s.ID)
		m.TotalTime += s.TimeCost()
		m.TotalValue += s.Value
		m.TotalComplexity += s.Cost(domain.DimComplexity)
		if s.TimeCost() > 0 {
			m.MeanEfficiency += s.Value / s.TimeCost()
			efficient++
		}
	}
	if m.Count > 0 {
		m.MeanComplexity = m.TotalComplexity / float64(m.Count)
	}
	if efficient > 0 {
		m.MeanEfficiency /= float64(efficient)
	}
	return m
}

func sortKey(s domain.Skill, criterion domain.SortCriterion) float64 {
	switch criterion {
	case domain.SortByTime:
		return s.TimeCost()
	case domain.SortByValue:
		return s.Value
	case domain.SortByRatio:
		return s.Ratio()
	default:
		return s.Cost(domain.DimComplexity)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
