package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error taxonomy shared by repositories, services and handlers.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
)

// ValidationError carries field-level messages. It matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready to collect fields.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for a field. The first message per field wins.
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns e as an error when at least one field failed.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validation builds a single-field ValidationError.
func Validation(field, msg string) error {
	e := NewValidationError()
	e.Add(field, msg)
	return e
}

// Internal marks a storage or dependency failure. The cause stays in the chain for logging.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
