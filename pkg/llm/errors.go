package llm

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("llm: api key is not configured")
	ErrEmptyMessage  = errors.New("llm: message is required")
	ErrEmptyReply    = errors.New("llm: completion has no content")
)

// APIError is a non-2xx answer from the completions endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm: status %d: %s", e.StatusCode, e.Message)
}
