package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultErrorMessage is used when the response carries no usable message
const DefaultErrorMessage = "Something went wrong"

// APIError is the normalized form of every failed call to the society API
type APIError struct {
	Message string
	Status  int
	// Data is the decoded response payload, or the raw body when it is not JSON
	Data interface{}
	Err  error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsAuthFailure reports whether the error tore down the session
func (e *APIError) IsAuthFailure() bool {
	return isAuthStatus(e.Status)
}

// AsAPIError unwraps err into an *APIError
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAuthFailure reports whether err is a 401 or 403 from the society API
func IsAuthFailure(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsAuthFailure()
}

// StatusOf returns the HTTP status carried by err, or 0
func StatusOf(err error) int {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Status
	}
	return 0
}

func isAuthStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// newResponseError builds an APIError from a non-2xx response
func newResponseError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Message: DefaultErrorMessage,
		Status:  status,
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return apiErr
	}

	var payload interface{}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		apiErr.Data = trimmed
		return apiErr
	}
	apiErr.Data = payload

	if obj, ok := payload.(map[string]interface{}); ok {
		if msg, ok := obj["message"].(string); ok && strings.TrimSpace(msg) != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}
