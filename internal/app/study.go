package app

import (
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/planner"
)

// SequenceRequest names the skills whose acquisition orders to enumerate.
// Empty SkillIDs means the catalog's critical set.
type SequenceRequest struct {
	SkillIDs []string
}

func NewSequenceRequest(ids ...string) SequenceRequest {
	return SequenceRequest{SkillIDs: ids}
}

// SequenceReport is a ranked permutation study plus display names.
type SequenceReport struct {
	Study planner.SequenceStudy
	Names map[string]string
}

// PivotRequest configures the greedy-versus-optimal strategy comparison.
// Empty Targets means the standard ladder; empty Criterion means ratio.
type PivotRequest struct {
	Targets   []float64
	Criterion string
}

func NewPivotRequest(targets ...float64) PivotRequest {
	return PivotRequest{Targets: targets, Criterion: string(domain.PivotByRatio)}
}

// PivotReport is the strategy comparison across targets, with the chosen
// headline criterion.
type PivotReport struct {
	Criterion domain.PivotCriterion
	Study     planner.PivotStudy
}

// SprintRequest configures the sorted two-sprint split.
type SprintRequest struct {
	Criterion string
	Size      int
}

func NewSprintRequest() SprintRequest {
	return SprintRequest{
		Criterion: string(domain.SortByComplexity),
		Size:      planner.DefaultSprintSize,
	}
}

// SprintReport is the sorted catalog partitioned into two sprints.
// SortAgreement reports whether merge sort, quicksort and the standard
// library produced the same order.
type SprintReport struct {
	Criterion     domain.SortCriterion
	Sorted        []SkillView
	Partition     planner.SprintPartition
	SortAgreement bool
}
