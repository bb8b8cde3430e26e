package formatter

import (
	"testing"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/planner"
	"github.com/stretchr/testify/assert"
)

func TestFormatSequences_RanksOrderings(t *testing.T) {
	report := &contract.SequenceReport{
		Study: planner.SequenceStudy{
			Skills:       []string{"S3", "S5"},
			Permutations: 2,
			Ranked: []planner.SequencePlan{
				{Order: []string{"S3", "S5"}, Expanded: []string{"S1", "S3", "S5"}, CompletionCost: 430, Efficiency: 0.0310},
				{Order: []string{"S5", "S3"}, Expanded: []string{"S1", "S5", "S3"}, CompletionCost: 480, Efficiency: 0.0278},
			},
			BestCost:  430,
			WorstCost: 480,
			MeanCost:  455,
			TotalTime: 280,
		},
		Names: map[string]string{"S3": "Distributed Systems", "S5": "Machine Learning"},
	}

	out := FormatSequences(report)
	assert.Contains(t, out, "SEQUENCE STUDY")
	assert.Contains(t, out, "S3, S5")
	assert.Contains(t, out, "(2 orderings)")
	assert.Contains(t, out, "S3 → S5")
	assert.Contains(t, out, "430h")
	assert.Contains(t, out, "S1 → S3 → S5")
	assert.Contains(t, out, "480h")
	assert.Contains(t, out, "the same 280h of material")
}
