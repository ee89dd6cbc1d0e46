package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gopool library

var (
	// ErrStopped indicates that an operation was attempted on a pool or
	// scheduler that has fully stopped
	ErrStopped = errors.New("pool is stopped")

	// ErrDraining indicates that a submission was rejected because shutdown
	// has begun and no new work is accepted
	ErrDraining = errors.New("pool is draining")

	// ErrNotStopped indicates that a restart was attempted while worker
	// goroutines are still running
	ErrNotStopped = errors.New("pool has not been stopped")

	// ErrAbandoned indicates that a queued task was discarded by a forced
	// shutdown before it began executing
	ErrAbandoned = errors.New("task abandoned before execution")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsLifecycle returns true if the error reports a pool lifecycle misuse
// rather than a failure produced by a task body
func IsLifecycle(err error) bool {
	return errors.Is(err, ErrStopped) || errors.Is(err, ErrDraining) || errors.Is(err, ErrNotStopped)
}

// ValidationError describes a rejected configuration value.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s (%v): %s", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration) on validation errors.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError returns true if the error is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
