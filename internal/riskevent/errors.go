package riskevent

import "errors"

var (
	ErrInvalidEvent     = errors.New("risk event is missing level")
	ErrMissingUserID    = errors.New("risk event is missing user id")
	ErrInvalidLimit     = errors.New("limit must be between 1 and 200")
	ErrStoreUnavailable = errors.New("risk event store is not configured")
)
