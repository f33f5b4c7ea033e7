package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrConfiguration        = errors.New("configuration error")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrTransport            = errors.New("transport error")
	ErrFormat               = errors.New("format error")
	ErrValidation           = errors.New("validation error")
	ErrUnrecognizedField    = errors.New("unrecognized field")
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrNoChanges is returned when an update carries no field to write.
	// It is a validation failure, so errors.Is(err, ErrValidation) holds.
	ErrNoChanges = fmt.Errorf("%w: no fields to update", ErrValidation)
)

// Field-level validation messages shared by entity packages.
const (
	MsgRequired = "is required"
	MsgReadOnly = "is read-only"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FormatError reports a value that cannot be converted to the representation
// a remote property requires, such as text written to a number column.
type FormatError struct {
	Field string
	Value string
	Want  string
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %q is not a valid %s", ErrFormat.Error(), e.Value, e.Want)
	}
	return fmt.Sprintf("%s: %s: %q is not a valid %s", ErrFormat.Error(), e.Field, e.Value, e.Want)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}
