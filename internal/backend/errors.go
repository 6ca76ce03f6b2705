// Package backend provides the HTTP client for the SmartPay prediction and
// analytics service. Each failure mode maps to a distinct error type so
// callers can branch on the outcome kind with errors.As.
package backend

import (
	"encoding/json"
	"fmt"
)

// ConnectionError represents a transport-level failure: the backend could not
// be reached, DNS failed, or the call exceeded its timeout.
type ConnectionError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("connection error for %s: %s", e.URL, e.Message)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// AuthError represents a 401 or 403 response from the backend.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error (HTTP %d): check API key and backend settings", e.StatusCode)
}

// ServerError represents a 5xx response from the backend.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error from backend (HTTP %d)", e.StatusCode)
}

// APIError represents any other non-success response. Body holds the decoded
// JSON body when the body is decodable, otherwise nil; Raw always holds the
// response text.
type APIError struct {
	StatusCode int
	Body       any
	Raw        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Raw)
}

// newAPIError builds an APIError with a best-effort decode of the body.
func newAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode, Raw: string(body)}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		e.Body = decoded
	}
	return e
}

// Unavailable is the collapsed failure state of the analytics endpoints. The
// panels are non-critical, so every failure kind folds into a single
// informational reason string.
type Unavailable struct {
	Reason string
}

func (e *Unavailable) Error() string {
	return "analytics unavailable: " + e.Reason
}
