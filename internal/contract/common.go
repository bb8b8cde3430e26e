// Package contract re-exports the application request and response types
// under stable names for CLI and TUI consumption.
package contract

import "github.com/alexanderramin/skillpath/internal/app"

type RequestErrorCode = app.RequestErrorCode

const (
	ErrEmptyCatalog     RequestErrorCode = app.ErrEmptyCatalog
	ErrUnknownSkill     RequestErrorCode = app.ErrUnknownSkill
	ErrUnknownProfile   RequestErrorCode = app.ErrUnknownProfile
	ErrInvalidLimit     RequestErrorCode = app.ErrInvalidLimit
	ErrInvalidTarget    RequestErrorCode = app.ErrInvalidTarget
	ErrInvalidCriterion RequestErrorCode = app.ErrInvalidCriterion
	ErrInvalidMethod    RequestErrorCode = app.ErrInvalidMethod
	ErrInvalidTrials    RequestErrorCode = app.ErrInvalidTrials
	ErrInvalidNoise     RequestErrorCode = app.ErrInvalidNoise
	ErrInvalidSize      RequestErrorCode = app.ErrInvalidSize
	ErrInvalidYears     RequestErrorCode = app.ErrInvalidYears
)

type RequestError = app.RequestError

type DimensionUsage = app.DimensionUsage

type SkillView = app.SkillView
