package http

import (
	"strings"

	"crisis-alert-srv/internal/chat"
	"crisis-alert-srv/internal/model"
	pkgErrors "crisis-alert-srv/pkg/errors"
)

const maxMessageLen = 10000

// --- Request DTOs ---

type ChatReq struct {
	Message          string `json:"message"`
	UserID           string `json:"user_id"`
	EmotionalContext string `json:"emotional_context"`
	UserEmail        string `json:"user_email"`
	SessionID        string `json:"session_id"`
}

func (r ChatReq) validate() error {
	return pkgErrors.NewValidationErrorCollector().
		Required(ErrCodeValidation, "message", r.Message).
		MaxRunes(ErrCodeValidation, "message", r.Message, maxMessageLen).
		Required(ErrCodeValidation, "user_id", r.UserID).
		Err()
}

func (r ChatReq) toInput(lang string) chat.ChatInput {
	return chat.ChatInput{
		Message:          r.Message,
		UserID:           strings.TrimSpace(r.UserID),
		EmotionalContext: r.EmotionalContext,
		UserEmail:        strings.TrimSpace(r.UserEmail),
		SessionID:        strings.TrimSpace(r.SessionID),
		Lang:             lang,
	}
}

type AssessReq struct {
	Message string `json:"message"`
}

// --- Response DTOs ---

type ChatResp struct {
	Response            string `json:"response"`
	RiskLevel           string `json:"risk_level"`
	Score               int    `json:"score"`
	AlertSent           bool   `json:"alert_sent"`
	IsEmergencyResponse bool   `json:"is_emergency_response"`
}

func newChatResp(o chat.ChatOutput) ChatResp {
	return ChatResp{
		Response:            o.Response,
		RiskLevel:           o.Assessment.Level.String(),
		Score:               o.Assessment.Score,
		AlertSent:           o.AlertSent,
		IsEmergencyResponse: o.IsEmergencyResponse,
	}
}

type AssessResp = model.RiskAssessment
