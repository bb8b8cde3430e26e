package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID_Valid(t *testing.T) {
	cases := []string{"S1", "H10", "A", "go-basics", "ml_found", "X9-y_2"}
	for _, id := range cases {
		s := Skill{ID: id}
		assert.NoError(t, s.ValidateID(), "should accept %q", id)
	}
}

func TestValidateID_Empty(t *testing.T) {
	s := Skill{ID: ""}
	err := s.ValidateID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestValidateID_LeadingDigit(t *testing.T) {
	s := Skill{ID: "1S"}
	err := s.ValidateID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start with a letter")
}

func TestValidateID_IllegalCharacters(t *testing.T) {
	for _, id := range []string{"S 1", "S.1", "Séis"} {
		s := Skill{ID: id}
		assert.Error(t, s.ValidateID(), "should reject %q", id)
	}
}

func TestValidateID_TooLong(t *testing.T) {
	s := Skill{ID: "Sabcdefghijklmnopqrstuvwxyz0123456789"}
	require.Error(t, s.ValidateID())
}

func TestCost_MissingDimensionIsZero(t *testing.T) {
	s := Skill{ID: "S1", Costs: map[string]float64{DimTime: 80}}
	assert.Equal(t, 80.0, s.Cost(DimTime))
	assert.Equal(t, 0.0, s.Cost(DimComplexity))
}

func TestRatio(t *testing.T) {
	s := Skill{ID: "S5", Value: 6, Costs: map[string]float64{DimTime: 40}}
	assert.InDelta(t, 0.15, s.Ratio(), 1e-9)
}

func TestRatio_NoTimeCost(t *testing.T) {
	s := Skill{ID: "S0", Value: 6}
	assert.Equal(t, 0.0, s.Ratio())
}

func TestIsBasic(t *testing.T) {
	assert.True(t, Skill{ID: "S1"}.IsBasic())
	assert.False(t, Skill{ID: "S3", Prereqs: []string{"S1"}}.IsBasic())
}
