package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller does not own the target event.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned when the request fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDate is returned when an event date cannot be parsed as a calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
