package alert

import "errors"

var (
	ErrWebhookNotConfigured   = errors.New("alert webhook url is not configured")
	ErrBotTokenNotConfigured  = errors.New("messaging bot token is not configured")
	ErrRecipientNotConfigured = errors.New("messaging bot recipient is not configured")
	ErrChannelPanic           = errors.New("alert channel panicked")
	ErrInvalidCallback        = errors.New("alert status callback has no type")
)
