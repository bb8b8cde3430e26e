package app

type RequestErrorCode string

const (
	ErrEmptyCatalog     RequestErrorCode = "EMPTY_CATALOG"
	ErrUnknownSkill     RequestErrorCode = "UNKNOWN_SKILL"
	ErrUnknownProfile   RequestErrorCode = "UNKNOWN_PROFILE"
	ErrInvalidLimit     RequestErrorCode = "INVALID_LIMIT"
	ErrInvalidTarget    RequestErrorCode = "INVALID_TARGET"
	ErrInvalidCriterion RequestErrorCode = "INVALID_CRITERION"
	ErrInvalidMethod    RequestErrorCode = "INVALID_METHOD"
	ErrInvalidTrials    RequestErrorCode = "INVALID_TRIALS"
	ErrInvalidNoise     RequestErrorCode = "INVALID_NOISE"
	ErrInvalidSize      RequestErrorCode = "INVALID_SIZE"
	ErrInvalidYears     RequestErrorCode = "INVALID_YEARS"
)

// RequestError reports a rejected use-case request. Code is a stable
// machine-readable discriminator; Message is for humans.
type RequestError struct {
	Code    RequestErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// DimensionUsage is one budget dimension's share consumed by a plan.
type DimensionUsage struct {
	Dimension string
	Used      float64
	Capacity  float64
	Fraction  float64
}

// SkillView is the presentation shape of one catalog skill.
type SkillView struct {
	ID         string
	Name       string
	Value      float64
	Costs      map[string]float64
	Prereqs    []string
	Demand     float64
	Critical   bool
	Basic      bool
	Efficiency float64
}
