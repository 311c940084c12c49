package model

import (
	"errors"
	"fmt"
)

// Sentinels for classifying record-level errors with errors.Is. A record-level
// error belongs to one record only; the caller decides whether to skip the
// record or abort the run.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrMissingField = errors.New("missing field")
)

// InvalidInputError reports a field whose value falls outside its declared domain.
type InvalidInputError struct {
	Field string
	Value any
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Value)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MissingFieldError reports a required field absent from a record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
