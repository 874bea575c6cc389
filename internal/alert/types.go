package alert

import (
	"time"

	"crisis-alert-srv/internal/model"
)

// RiskAlertInput is one message that needs a human responder.
type RiskAlertInput struct {
	UserID     string
	Message    string
	Assessment model.RiskAssessment
	UserEmail  string // optional
	SessionID  string // optional
}

// StatusCallbackInput is a progress report sent back by the alert workflow engine.
type StatusCallbackInput struct {
	Type string
	Data map[string]any
}

// Callback types sent by the workflow engine.
const (
	CallbackAlertProcessed       = "alert_processed"
	CallbackTelegramSent         = "telegram_sent"
	CallbackProfessionalNotified = "professional_notified"
)

// Config holds the dispatcher settings that are not owned by a transport.
type Config struct {
	// ChatID is the fixed messaging-bot recipient.
	ChatID string
	// ServiceName brands the bot message header.
	ServiceName string
	// Timeout bounds a whole dispatch, both channels included.
	Timeout time.Duration
}

const (
	DefaultServiceName = "Break_IA"
	DefaultTimeout     = 20 * time.Second

	// MaxPayloadMessageLen caps the message carried by the webhook payload.
	MaxPayloadMessageLen = 500
	// MaxExcerptLen caps the message excerpt shown in the bot message.
	MaxExcerptLen = 100
)
