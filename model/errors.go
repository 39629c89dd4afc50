package model

import "errors"

// Error kinds signalled by the db layer, checked with errors.Is.
// Handlers translate them into HTTP statuses.
var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation error")
	// ErrInvalidInput is returned when geolocation query parameters are
	// missing or not parseable.
	ErrInvalidInput = errors.New("invalid input")
)
