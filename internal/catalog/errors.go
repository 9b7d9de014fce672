package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid catalog configuration")
	// ErrMalformedResponse indicates a body that could not be decoded
	ErrMalformedResponse = errors.New("malformed catalog response")
)

// APIError is a non-2xx response from the catalog
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error: %s: status %d", e.Endpoint, e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError reports 5xx responses, typically a cold or overloaded backend
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
