package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnresolved marks a row whose team identity could not be resolved.
	// It is reported, never treated as a failure.
	ErrUnresolved     = errors.New("unresolved identity")
	ErrLeagueNotFound = errors.New("league not found")
	ErrSchemaMissing  = errors.New("expected tables are missing")
)
