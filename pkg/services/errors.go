package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when a transactional write loses
	// a race, e.g. a duplicate (company_id, version) insert. Retriable.
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrPreconditionFailed is returned when an operation is rejected because
	// the entity is not in an eligible state. No mutation happens.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrInvalidTransition is returned for an operator action that is not
	// defined for the company's current status.
	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrPreconditionFailed)

	// ErrAnalysisLocked is returned when declared attributes are edited after
	// the first analysis has run.
	ErrAnalysisLocked = fmt.Errorf("declared attributes are locked after analysis: %w", ErrPreconditionFailed)

	// ErrNotEligible is returned when a company does not meet the
	// auto-approval requirements.
	ErrNotEligible = fmt.Errorf("not eligible for auto-approval: %w", ErrPreconditionFailed)
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
