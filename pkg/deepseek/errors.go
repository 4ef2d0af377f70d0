package deepseek

import "fmt"

// APIError is a non-200 answer from the completion endpoint.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("deepseek: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("deepseek: API error %d (%s): %s", e.StatusCode, e.Type, e.Message)
}

// Temporary reports whether the same request may succeed later.
func (e *APIError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

func newAPIError(status int, body []byte, parsed ErrorResponse, parseErr error) *APIError {
	if parseErr != nil || parsed.Error.Message == "" {
		return &APIError{StatusCode: status, Message: string(body)}
	}
	return &APIError{StatusCode: status, Type: parsed.Error.Type, Message: parsed.Error.Message}
}
