package postgres

import (
	"errors"
)

var (
	ErrInvalidUUID = errors.New("invalid UUID format")
)
