package chat

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid chat input")
	ErrMessageRequired = fmt.Errorf("%w: message is required", ErrInvalidInput)
	ErrUserIDRequired  = fmt.Errorf("%w: user_id is required", ErrInvalidInput)
)
