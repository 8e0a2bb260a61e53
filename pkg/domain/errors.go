package domain

import (
	"errors"
	"fmt"
)

var ErrServiceUnavailable = errors.New("service unavailable")

type validationError struct {
	Field   string
	Message string
}

func (e *validationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &validationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var vErr *validationError
	return errors.As(err, &vErr)
}

// ValidationMessage returns the bare message of a validation error without the field prefix.
func ValidationMessage(err error) string {
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
