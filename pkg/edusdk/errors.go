package edusdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the service. It implements
// the error interface so callers can inspect the status code and the
// server-provided reason.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the server-provided error reason
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("edusdk: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// parseErrorResponse turns an HTTP error response into a typed *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
		}
	}

	// Fallback: create a generic error from the status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
