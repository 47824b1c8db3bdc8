package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced recommendation id does not exist.
var ErrNotFound = errors.New("recommendation not found")

// ValidationError reports caller-supplied data that violates a field or
// business rule. Handlers surface it as a 400 with the reason as the message.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
