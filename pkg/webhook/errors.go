package webhook

import (
	"errors"
	"fmt"
)

var (
	ErrURLRequired = errors.New("webhook: url is required")
	ErrInvalidURL  = errors.New("webhook: url must be absolute http(s)")
)

// StatusError is returned when the endpoint answers outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("webhook returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("webhook returned status %d: %s", e.StatusCode, e.Body)
}
