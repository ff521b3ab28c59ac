package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// FieldError describes a validation problem with one input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects field errors. The zero value is ready to use:
// call Add for every problem found, then return Err.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add records a problem with field.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// Err returns e if any field error was recorded, nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	ve := &ValidationError{}
	ve.Add(field, message)
	return ve
}
