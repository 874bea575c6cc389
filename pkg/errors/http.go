package errors

import "net/http"

const (
	messageUnauthorized = "Missing internal key"
	messageForbidden    = "Invalid internal key"
)

// HTTPError is a domain error already mapped to a response code and status.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError. A zero statusCode means 400.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError is returned to internal callers that sent no key.
func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, messageUnauthorized, http.StatusUnauthorized)
}

// NewForbiddenHTTPError is returned to internal callers whose key does not match.
func NewForbiddenHTTPError() *HTTPError {
	return NewHTTPError(http.StatusForbidden, messageForbidden, http.StatusForbidden)
}

func (e *HTTPError) Error() string {
	return e.Message
}
