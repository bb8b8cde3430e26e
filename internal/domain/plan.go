package domain

// Plan is a prerequisite-respecting acquisition order together with its
// aggregate value and per-dimension cost totals. An empty plan (no
// sequence, value 0) is a valid result, not an error.
type Plan struct {
	Sequence   []string
	TotalValue float64
	CostTotals map[string]float64
}

func (p Plan) IsEmpty() bool {
	return len(p.Sequence) == 0
}

func (p Plan) Contains(id string) bool {
	for _, member := range p.Sequence {
		if member == id {
			return true
		}
	}
	return false
}

// Cost returns the plan's total cost in the given dimension.
func (p Plan) Cost(dimension string) float64 {
	return p.CostTotals[dimension]
}
