package response

import (
	"crisis-alert-srv/pkg/errors"
)

// Envelope codes shared by every route. Domain codes live in each delivery package.
const (
	ValidationErrorCode     = 100400
	InternalServerErrorCode = 100500

	MessageSuccess      = "Success"
	ValidationErrorMsg  = "Invalid request"
	DefaultErrorMessage = "Internal error, please retry"

	DefaultStackTraceDepth = 32
)

// Resp is the JSON envelope returned by every endpoint.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps sentinel domain errors to their HTTP form.
type ErrorMapping map[error]*errors.HTTPError
