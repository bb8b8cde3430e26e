package app

// CatalogListResult carries the full catalog for display.
type CatalogListResult struct {
	Skills     []SkillView
	Dimensions []string
}

// ValidationReport is the outcome of checking every catalog invariant.
type ValidationReport struct {
	SkillCount int
	Valid      bool
	Issues     []string
}

// CatalogStats summarizes the stored catalog.
type CatalogStats struct {
	SkillCount    int
	BasicCount    int
	CriticalCount int
	Dimensions    []string
	TotalValue    float64
	TotalTime     float64
	MeanValue     float64
	MeanTime      float64
	ScenarioCount int
	ProfileCount  int
}

// SeedResult reports what the built-in dataset load wrote.
type SeedResult struct {
	Skills    int
	Scenarios int
	Profiles  int
}

// ImportResult reports what a catalog file import wrote.
type ImportResult struct {
	Path      string
	Skills    int
	Scenarios int
	Profiles  int
}
