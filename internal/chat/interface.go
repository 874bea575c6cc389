package chat

import (
	"context"

	"crisis-alert-srv/internal/model"
)

// UseCase handles inbound user messages.
type UseCase interface {
	// Chat assesses the message before any reply is generated. Messages that
	// need intervention are dispatched to responders and recorded, and their
	// reply is the emergency text instead of the generated one.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// Assess scores a message without side effects other than metrics.
	Assess(ctx context.Context, message string) model.RiskAssessment
}
