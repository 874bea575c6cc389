package riskevent

import (
	"time"

	"crisis-alert-srv/internal/model"
)

type RecordInput struct {
	UserID     string
	Message    string // only a short excerpt reaches the log line
	Assessment model.RiskAssessment
	Outcome    model.DeliveryOutcome
	UserEmail  string
	SessionID  string
}

type ListInput struct {
	UserID string
	Level  string
	Limit  int
}

const (
	DefaultTimeout   = 5 * time.Second
	DefaultListLimit = 50
	MaxListLimit     = 200
	LogExcerptLen    = 100

	// UnknownUserID stands in for a missing user id so the event is still audited.
	UnknownUserID = "unknown"

	// Sink names, used as metric labels.
	SinkPostgres = "postgres"
	SinkRedis    = "redis"
)
