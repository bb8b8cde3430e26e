package contract

import "github.com/alexanderramin/skillpath/internal/app"

type SequenceRequest = app.SequenceRequest

func NewSequenceRequest(ids ...string) SequenceRequest {
	return app.NewSequenceRequest(ids...)
}

type SequenceReport = app.SequenceReport

type PivotRequest = app.PivotRequest

func NewPivotRequest(targets ...float64) PivotRequest {
	return app.NewPivotRequest(targets...)
}

type PivotReport = app.PivotReport

type SprintRequest = app.SprintRequest

func NewSprintRequest() SprintRequest {
	return app.NewSprintRequest()
}

type SprintReport = app.SprintReport
