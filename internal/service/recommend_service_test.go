package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/domain"
)

func TestRecommendService_Outlook_RanksEveryScenario(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewRecommendService(skills, outlook)

	report, err := svc.Outlook(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Scenarios, 3)
	require.Len(t, report.Trends, 3)
	assert.Equal(t, "ai_shift", report.Scenarios[0].Name)
	for _, trend := range report.Trends {
		assert.NotEmpty(t, trend.Priority, "scenario %s must rank its boosted skills", trend.Scenario.Name)
		assert.Greater(t, trend.Impact, 0.0)
	}
}

func TestRecommendService_ForProfile_StoredProfile(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewRecommendService(skills, outlook)

	req := contract.NewRecommendRequest()
	req.Profile = "beginner"

	report, err := svc.ForProfile(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "beginner", report.ProfileName)
	assert.Empty(t, report.Acquired)
	// Auto picks the horizon walk for small acquired sets.
	assert.Equal(t, domain.MethodHorizon, report.Recommendation.Method)
	assert.NotEmpty(t, report.Recommendation.Recommended)
	assert.LessOrEqual(t, len(report.Recommendation.Recommended), 3)
	assert.NotEmpty(t, report.Recommendation.FavorableScenario)
	assert.Len(t, report.Recommendation.Trends, 3)
	assert.NotEmpty(t, report.Names)
}

func TestRecommendService_ForProfile_ExplicitSkillsUseLookahead(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewRecommendService(skills, outlook)

	req := contract.NewRecommendRequest()
	req.Skills = []string{"S1", "S2", "S3", "S8"}

	report, err := svc.ForProfile(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, report.ProfileName)
	assert.Equal(t, domain.MethodLookahead, report.Recommendation.Method)
	for _, id := range report.Recommendation.Recommended {
		assert.NotContains(t, req.Skills, id, "recommendations must be new skills")
	}
}

func TestRecommendService_ForProfile_ExplicitMethod(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewRecommendService(skills, outlook)

	req := contract.NewRecommendRequest()
	req.Profile = "backend_dev"
	req.Method = string(domain.MethodLookahead)

	report, err := svc.ForProfile(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.MethodLookahead, report.Recommendation.Method)
	assert.Equal(t, []string{"S1", "S3", "S8"}, report.Acquired)
}

func TestRecommendService_ForProfile_UnknownProfile(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewRecommendService(skills, outlook)

	req := contract.NewRecommendRequest()
	req.Profile = "wizard"

	_, err := svc.ForProfile(context.Background(), req)
	requireRequestError(t, err, contract.ErrUnknownProfile)
	assert.Contains(t, err.Error(), "available:")
	assert.Contains(t, err.Error(), "beginner")
}

func TestRecommendService_ForProfile_InvalidMethod(t *testing.T) {
	skills, outlook, _, _ := setupRepos(t)
	svc := NewRecommendService(skills, outlook)

	req := contract.NewRecommendRequest()
	req.Method = "psychic"

	_, err := svc.ForProfile(context.Background(), req)
	requireRequestError(t, err, contract.ErrInvalidMethod)
}

func TestRecommendService_ForProfile_NegativeYears(t *testing.T) {
	skills, outlook, _, _ := setupRepos(t)
	svc := NewRecommendService(skills, outlook)

	req := contract.NewRecommendRequest()
	req.Years = -1

	_, err := svc.ForProfile(context.Background(), req)
	requireRequestError(t, err, contract.ErrInvalidYears)
}

func TestRecommendService_CompareProfiles_CoversEveryStoredProfile(t *testing.T) {
	skills, outlook, _, uow := setupRepos(t)
	seedWorkspace(t, skills, outlook, uow)
	svc := NewRecommendService(skills, outlook)

	comparisons, err := svc.CompareProfiles(context.Background())
	require.NoError(t, err)

	require.Len(t, comparisons, 5)
	assert.Equal(t, "beginner", comparisons[0].Profile.Name)
	for _, cmp := range comparisons {
		assert.Equal(t, domain.MethodHorizon, cmp.Method, "every stock profile holds at most three skills")
		assert.NotEmpty(t, cmp.Recommended, "profile %s should get a recommendation", cmp.Profile.Name)
		assert.Greater(t, cmp.ExpectedValue, 0.0)
	}
}
