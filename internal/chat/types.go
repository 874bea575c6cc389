package chat

import "crisis-alert-srv/internal/model"

type ChatInput struct {
	Message          string
	UserID           string
	EmotionalContext string
	UserEmail        string
	SessionID        string
	Lang             string
}

type ChatOutput struct {
	Response            string
	Assessment          model.RiskAssessment
	AlertSent           bool
	IsEmergencyResponse bool
}
