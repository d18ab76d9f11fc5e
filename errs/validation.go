package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// FieldError names one violated constraint. Field is a dotted path into the
// request body, e.g. "techStack.2".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a payload, not just the first.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError(fieldErrors ...FieldError) *ValidationError {
	return &ValidationError{Errors: fieldErrors}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// HasField reports whether any violation is reported against field.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
