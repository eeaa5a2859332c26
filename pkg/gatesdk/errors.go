package gatesdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents an error response from the gate service. It implements
// the error interface so SDK calls can return it directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Message is a human-readable description of the error
	Message string `json:"error"`

	// Redirect is the path the client should navigate to, when set
	Redirect string `json:"redirect,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether this error is an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// parseErrorResponse converts a non-2xx HTTP response body into a typed
// *APIError. Malformed bodies fall back to a generic error from the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
			Redirect:   errResp.Redirect,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
