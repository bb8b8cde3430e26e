package domain

import "time"

// PlanRun is a persisted record of one selector invocation: the inputs
// that shaped it and the plan it produced. Saved runs give the history
// command something to show and make results comparable across catalog
// revisions.
type PlanRun struct {
	ID         string
	Label      string
	CreatedAt  time.Time
	Goal       string
	Budget     Budget
	Sequence   []string
	TotalValue float64
	CostTotals map[string]float64
}

// Plan reassembles the stored result as a Plan value.
func (r PlanRun) Plan() Plan {
	return Plan{Sequence: r.Sequence, TotalValue: r.TotalValue, CostTotals: r.CostTotals}
}
