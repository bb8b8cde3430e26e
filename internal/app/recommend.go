package app

import (
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/planner"
)

// RecommendRequest asks what to learn next. Profile names a stored
// profile; Skills gives the acquired set directly (mutually exclusive,
// Skills wins). Zero Years means the planner default.
type RecommendRequest struct {
	Profile string
	Skills  []string
	Method  string
	Years   int
}

func NewRecommendRequest() RecommendRequest {
	return RecommendRequest{Method: string(domain.MethodAuto)}
}

// RecommendReport is a market-aware recommendation for one profile.
type RecommendReport struct {
	ProfileName    string
	Acquired       []string
	Recommendation planner.Recommendation
	Names          map[string]string
}

// OutlookReport is the market view: every stored scenario with its
// boosted-skill trend ranking.
type OutlookReport struct {
	Scenarios []domain.Scenario
	Trends    []planner.ScenarioTrend
}

// ProfileComparison is one stored profile's recommendation summarized for
// the side-by-side table.
type ProfileComparison struct {
	Profile       domain.Profile
	Method        domain.RecommendMethod
	Recommended   []string
	ExpectedValue float64
	Alignment     float64
	ROI           float64
	GapCount      int
}
