package service

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when the session holds no logged-in user
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrInvalidID is returned for a zero record id
var ErrInvalidID = errors.New("invalid ID")

// ValidationError reports input the API would reject anyway
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a *ValidationError or ErrInvalidID
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr) || errors.Is(err, ErrInvalidID)
}
