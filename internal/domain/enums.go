package domain

type RobustnessClass string

const (
	RobustnessVeryHigh RobustnessClass = "very_high"
	RobustnessHigh     RobustnessClass = "high"
	RobustnessModerate RobustnessClass = "moderate"
	RobustnessLow      RobustnessClass = "low"
)

type AgreementClass string

const (
	AgreementConvergent AgreementClass = "convergent"
	AgreementClose      AgreementClass = "close"
	AgreementModerate   AgreementClass = "moderate"
	AgreementDivergent  AgreementClass = "divergent"
)

type ConfidenceClass string

const (
	ConfidenceHigh   ConfidenceClass = "high"
	ConfidenceMedium ConfidenceClass = "medium"
	ConfidenceLow    ConfidenceClass = "low"
)

type PivotCriterion string

const (
	PivotByRatio PivotCriterion = "ratio"
	PivotByValue PivotCriterion = "value"
	PivotByTime  PivotCriterion = "time"
)

type SortCriterion string

const (
	SortByComplexity SortCriterion = "complexity"
	SortByTime       SortCriterion = "time"
	SortByValue      SortCriterion = "value"
	SortByRatio      SortCriterion = "ratio"
)

type CounterexampleKind string

const (
	CounterExcessValue  CounterexampleKind = "excess_value"
	CounterExtraTime    CounterexampleKind = "extra_time"
	CounterMissedTarget CounterexampleKind = "missed_target"
)

type RecommendMethod string

const (
	MethodAuto      RecommendMethod = "auto"
	MethodHorizon   RecommendMethod = "horizon"
	MethodLookahead RecommendMethod = "lookahead"
)

type GapPriority string

const (
	GapHigh   GapPriority = "high"
	GapMedium GapPriority = "medium"
)

// ValidPivotCriteria is the canonical set of accepted pivot criterion strings.
var ValidPivotCriteria = map[string]bool{
	"ratio": true, "value": true, "time": true,
}

// ValidSortCriteria is the canonical set of accepted sort criterion strings.
var ValidSortCriteria = map[string]bool{
	"complexity": true, "time": true, "value": true, "ratio": true,
}

// ValidRecommendMethods is the canonical set of accepted recommendation methods.
var ValidRecommendMethods = map[string]bool{
	"auto": true, "horizon": true, "lookahead": true,
}
