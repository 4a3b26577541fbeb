package service

import (
	"errors"
	"fmt"
)

// Draft errors - sentinel errors returned by Draft edit operations.
// Callers use errors.Is() to check for them; they are never wrapped in a
// DraftError.
var (
	// ErrMaterialIndex indicates an edit addressed a card position outside the list.
	ErrMaterialIndex = errors.New("material index out of range")

	// ErrLastMaterial indicates an attempt to remove the only remaining card.
	// A draft always keeps at least one card.
	ErrLastMaterial = errors.New("cannot remove the last material")

	// ErrSlotIndex indicates a video slot position outside 0..3.
	ErrSlotIndex = errors.New("video slot index out of range")

	// ErrMaterialNotFound indicates no card carries the requested ID.
	ErrMaterialNotFound = errors.New("material not found")

	// ErrNilDependency indicates a constructor or operation received a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")
)

// DraftError wraps failures of a draft's external collaborators with context.
type DraftError struct {
	// Operation is the operation that failed (e.g., "submit", "resolve_preview")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for DraftError.
func (e *DraftError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("draft %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("draft %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DraftError) Unwrap() error {
	return e.Err
}

// NewDraftError creates a new DraftError.
// It returns known sentinel errors directly without wrapping.
func NewDraftError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{
		ErrMaterialIndex,
		ErrLastMaterial,
		ErrSlotIndex,
		ErrMaterialNotFound,
		ErrNilDependency,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	return &DraftError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
