package model

import (
	"fmt"
	"strings"
	"time"
)

// RiskLevel is the severity classification of a single inbound message.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// RiskLevels lists every level from least to most severe.
var RiskLevels = []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical}

func (l RiskLevel) String() string {
	return string(l)
}

// RequiresIntervention reports whether a human responder must be notified.
func (l RiskLevel) RequiresIntervention() bool {
	return l != RiskLevelLow
}

// ParseRiskLevel parses a level name case-insensitively.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskLevelLow:
		return RiskLevelLow, nil
	case RiskLevelMedium:
		return RiskLevelMedium, nil
	case RiskLevelHigh:
		return RiskLevelHigh, nil
	case RiskLevelCritical:
		return RiskLevelCritical, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRiskLevel, s)
	}
}

// RiskAssessment is the result of scoring one message. It is built once and never mutated.
type RiskAssessment struct {
	Level                RiskLevel `json:"level"`
	Score                int       `json:"score"`
	Triggers             []string  `json:"triggers"`
	RequiresIntervention bool      `json:"requires_intervention"`
	SuggestedAction      string    `json:"suggested_action"`
	LexiconVersion       string    `json:"lexicon_version"`
}

// AlertPayload is the JSON body sent to the primary alert channel.
type AlertPayload struct {
	UserID    string   `json:"userId"`
	Message   string   `json:"message"`
	RiskLevel string   `json:"riskLevel"`
	Score     int      `json:"score"`
	Triggers  []string `json:"triggers"`
	Timestamp string   `json:"timestamp"`
	UserEmail string   `json:"userEmail,omitempty"`
	SessionID string   `json:"sessionId,omitempty"`
}

// Alert channel names.
const (
	ChannelPrimary   = "primary"
	ChannelSecondary = "secondary"
)

// ChannelResult is the delivery result of one alert channel.
type ChannelResult struct {
	Channel string `json:"channel"`
	OK      bool   `json:"ok"`
	Detail  string `json:"detail,omitempty"`
	Err     error  `json:"-"`
}

// DeliveryOutcome is the per-channel result of one dispatch.
type DeliveryOutcome struct {
	Primary   ChannelResult `json:"primary"`
	Secondary ChannelResult `json:"secondary"`
}

// Delivered is true when at least one channel succeeded.
func (o DeliveryOutcome) Delivered() bool {
	return o.Primary.OK || o.Secondary.OK
}

// RiskEvent is the audit record written for every message that required intervention.
type RiskEvent struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Level          RiskLevel `json:"risk_level"`
	Score          int       `json:"score"`
	Triggers       []string  `json:"triggers"`
	Delivered      bool      `json:"delivered"`
	PrimaryOK      bool      `json:"primary_ok"`
	SecondaryOK    bool      `json:"secondary_ok"`
	LexiconVersion string    `json:"lexicon_version"`
	UserEmail      string    `json:"user_email,omitempty"`
	SessionID      string    `json:"session_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
