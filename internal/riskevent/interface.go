package riskevent

import (
	"context"

	"crisis-alert-srv/internal/model"
)

// UseCase is the audit trail of messages that required intervention.
type UseCase interface {
	// Record writes the event to every configured sink. It never fails the caller;
	// sink errors are logged and counted.
	Record(ctx context.Context, input RecordInput)
	List(ctx context.Context, input ListInput) ([]model.RiskEvent, error)
}
