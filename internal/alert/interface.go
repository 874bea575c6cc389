package alert

import (
	"context"

	"crisis-alert-srv/internal/model"
)

// UseCase delivers risk alerts to human responders.
type UseCase interface {
	// DispatchRiskAlert attempts the primary webhook and, unconditionally, the
	// secondary messaging bot. It never fails: every channel error is logged and
	// folded into the returned outcome. outcome.Delivered() is true when at least
	// one channel succeeded.
	DispatchRiskAlert(ctx context.Context, input RiskAlertInput) model.DeliveryOutcome
	// AcknowledgeStatus records a progress callback from the alert workflow engine.
	AcknowledgeStatus(ctx context.Context, input StatusCallbackInput) error
}
