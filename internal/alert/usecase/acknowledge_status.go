package usecase

import (
	"context"
	"sort"
	"strings"

	"crisis-alert-srv/internal/alert"
)

func (uc *implUseCase) AcknowledgeStatus(ctx context.Context, input alert.StatusCallbackInput) error {
	typ := strings.TrimSpace(input.Type)
	if typ == "" {
		uc.logger.Warnf(ctx, "internal.alert.usecase.AcknowledgeStatus: %v", alert.ErrInvalidCallback)
		return alert.ErrInvalidCallback
	}

	// Payload values may echo user text; only keys and identifiers are logged.
	keys := make([]string, 0, len(input.Data))
	for k := range input.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	userID, _ := input.Data["userId"].(string)

	switch typ {
	case alert.CallbackAlertProcessed:
		uc.logger.Infof(ctx, "internal.alert.usecase.AcknowledgeStatus: alert processed by workflow, user=%s keys=%v", userID, keys)
	case alert.CallbackTelegramSent:
		uc.logger.Infof(ctx, "internal.alert.usecase.AcknowledgeStatus: workflow sent bot message, user=%s keys=%v", userID, keys)
	case alert.CallbackProfessionalNotified:
		uc.logger.Infof(ctx, "internal.alert.usecase.AcknowledgeStatus: professional notified, user=%s keys=%v", userID, keys)
	default:
		uc.logger.Warnf(ctx, "internal.alert.usecase.AcknowledgeStatus: untyped callback %q, user=%s keys=%v", typ, userID, keys)
	}
	return nil
}
