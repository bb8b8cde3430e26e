package contract

import "github.com/alexanderramin/skillpath/internal/app"

type RecommendRequest = app.RecommendRequest

func NewRecommendRequest() RecommendRequest {
	return app.NewRecommendRequest()
}

type RecommendReport = app.RecommendReport

type OutlookReport = app.OutlookReport

type ProfileComparison = app.ProfileComparison
