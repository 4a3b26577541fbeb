// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a schedule fails validation.
	// This is usually wrapped by a more specific error type.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a calendar day is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidMediaKind is returned when a media kind is not one of the supported kinds.
	ErrInvalidMediaKind = errors.New("invalid media kind")
)
