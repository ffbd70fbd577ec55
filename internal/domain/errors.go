package domain

import (
	"errors"
	"fmt"
)

// Common domain errors returned by entity constructors and state helpers.
var (
	// ErrEmptyName indicates that a required display name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrUnknownHackathon indicates that an operation referenced a
	// hackathon ID that does not exist in the state.
	ErrUnknownHackathon = errors.New("unknown hackathon")

	// ErrNoActiveHackathon indicates that the state has no active
	// hackathon to apply a scoped mutation to.
	ErrNoActiveHackathon = errors.New("no active hackathon")
)

// ValidationError represents a failed entity validation.
// It can contain multiple validation failures.
type ValidationError struct {
	// Entity is the name of the entity that failed validation.
	Entity string

	// Errors contains the list of validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError adds a new error message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates a new ValidationError for the given entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}
