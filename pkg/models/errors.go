package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidConfig indicates a configuration value object failed validation.
	ErrInvalidConfig = errors.New("models: invalid configuration")

	// ErrNegativeBound indicates a range bound is below zero.
	ErrNegativeBound = errors.New("models: range bound cannot be negative")

	// ErrMinNotBelowMax indicates the lower bound is not strictly below the upper bound.
	ErrMinNotBelowMax = errors.New("models: minimum must be less than maximum")

	// ErrBoundExceeded indicates a range bound is above its physical limit.
	ErrBoundExceeded = errors.New("models: range bound exceeds limit")

	// ErrSpanTooSmall indicates the grinder range has fewer usable steps than required.
	ErrSpanTooSmall = errors.New("models: range has too few steps")

	// ErrSpanTooLarge indicates the grinder range is wider than any real scale.
	ErrSpanTooLarge = errors.New("models: range has too many steps")
)

// ValidationError represents a single violated invariant with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is an ordered collection of validation errors.
// The order matches the order in which invariants are checked, so
// Errors[0] is the primary violation to show the user.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// First returns the message of the first violated invariant,
// or an empty string when there are none.
func (e *ValidationErrors) First() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
