package domain

import "sort"

// Budget maps a cost dimension to its capacity. A dimension missing from
// the budget leaves skill costs in that dimension unconstrained.
type Budget map[string]float64

// Validate fails with *InvalidBudgetError on the first negative capacity,
// checked in sorted dimension order so the reported dimension is stable.
func (b Budget) Validate() error {
	for _, dim := range b.Dimensions() {
		if b[dim] < 0 {
			return &InvalidBudgetError{Dimension: dim, Capacity: b[dim]}
		}
	}
	return nil
}

// Dimensions returns the budget's dimension names, sorted.
func (b Budget) Dimensions() []string {
	dims := make([]string, 0, len(b))
	for dim := range b {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}

// IsZero reports whether the budget admits no positive spending at all.
func (b Budget) IsZero() bool {
	for _, capacity := range b {
		if capacity > 0 {
			return false
		}
	}
	return true
}

func (b Budget) Clone() Budget {
	out := make(Budget, len(b))
	for dim, capacity := range b {
		out[dim] = capacity
	}
	return out
}
