package telegram

import (
	"errors"
	"fmt"
)

var (
	ErrTokenRequired  = errors.New("telegram: bot token is required")
	ErrChatIDRequired = errors.New("telegram: chat id is required")
)

// APIError is returned when the Bot API answers without "ok": true.
type APIError struct {
	StatusCode  int
	ErrorCode   int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("telegram api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("telegram api error: status %d: %s", e.StatusCode, e.Description)
}
