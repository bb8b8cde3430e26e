package domain

import (
	"fmt"
	"strings"
)

// InvalidCatalogError reports every structural problem found in a catalog:
// malformed or duplicate identifiers, negative numbers, dangling
// prerequisite references, prerequisite cycles.
type InvalidCatalogError struct {
	Issues []string
}

func (e *InvalidCatalogError) Error() string {
	switch len(e.Issues) {
	case 0:
		return "invalid catalog"
	case 1:
		return "invalid catalog: " + e.Issues[0]
	default:
		return fmt.Sprintf("invalid catalog: %d issues: %s", len(e.Issues), strings.Join(e.Issues, "; "))
	}
}

// InvalidBudgetError reports a negative capacity in one budget dimension.
type InvalidBudgetError struct {
	Dimension string
	Capacity  float64
}

func (e *InvalidBudgetError) Error() string {
	return fmt.Sprintf("invalid budget: dimension %q has negative capacity %.2f", e.Dimension, e.Capacity)
}
