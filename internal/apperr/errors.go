// Package apperr defines the error taxonomy shared by the CLI, service and store.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrUsage       = errors.New("usage error")
	ErrEnvironment = errors.New("environment error")
	ErrStore       = errors.New("store error")
)

// UsageError reports invalid input detected before the store is touched.
type UsageError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns ErrUsage for errors.Is support.
func (e *UsageError) Unwrap() error {
	return ErrUsage
}

// NewUsageError creates a usage error for the given field.
func NewUsageError(field, message string) error {
	return &UsageError{Field: field, Message: message}
}

// EnvironmentError reports a failed bootstrap step (home dir, directory, file, store open).
type EnvironmentError struct {
	Step string
	Err  error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap exposes both ErrEnvironment and the underlying cause.
func (e *EnvironmentError) Unwrap() []error {
	return []error{ErrEnvironment, e.Err}
}

// NewEnvironmentError wraps err with the step that failed.
func NewEnvironmentError(step string, err error) error {
	return &EnvironmentError{Step: step, Err: err}
}

// StoreError reports a failed query or insert, or a malformed stored record.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrStore and the underlying cause.
func (e *StoreError) Unwrap() []error {
	return []error{ErrStore, e.Err}
}

// NewStoreError wraps err with the store operation that failed.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}
