package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/internal/model"
)

func (uc *implUseCase) DispatchRiskAlert(ctx context.Context, input alert.RiskAlertInput) model.DeliveryOutcome {
	// The alert must outlive the inbound request.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.Timeout)
	defer cancel()

	payload := uc.buildPayload(input)

	var (
		out model.DeliveryOutcome
		wg  sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.Primary = uc.runChannel(ctx, model.ChannelPrimary, func(ctx context.Context) error {
			return uc.sendPrimary(ctx, payload)
		})
	}()
	go func() {
		defer wg.Done()
		out.Secondary = uc.runChannel(ctx, model.ChannelSecondary, func(ctx context.Context) error {
			return uc.sendSecondary(ctx, payload)
		})
	}()
	wg.Wait()

	if out.Delivered() {
		uc.logger.Infof(ctx, "internal.alert.usecase.DispatchRiskAlert: user=%s level=%s delivered primary=%t secondary=%t",
			input.UserID, payload.RiskLevel, out.Primary.OK, out.Secondary.OK)
	} else {
		uc.logger.Errorf(ctx, "internal.alert.usecase.DispatchRiskAlert: user=%s level=%s not delivered on any channel",
			input.UserID, payload.RiskLevel)
	}
	return out
}

func (uc *implUseCase) buildPayload(input alert.RiskAlertInput) model.AlertPayload {
	triggers := input.Assessment.Triggers
	if triggers == nil {
		triggers = []string{}
	}
	return model.AlertPayload{
		UserID:    input.UserID,
		Message:   truncateRunes(input.Message, alert.MaxPayloadMessageLen),
		RiskLevel: input.Assessment.Level.String(),
		Score:     input.Assessment.Score,
		Triggers:  triggers,
		Timestamp: uc.clock().UTC().Format(time.RFC3339),
		UserEmail: input.UserEmail,
		SessionID: input.SessionID,
	}
}

// runChannel executes one channel, converting errors and panics into a result.
func (uc *implUseCase) runChannel(ctx context.Context, channel string, send func(context.Context) error) (res model.ChannelResult) {
	res.Channel = channel
	defer func() {
		if r := recover(); r != nil {
			res.OK = false
			res.Err = fmt.Errorf("%w: %v", alert.ErrChannelPanic, r)
			res.Detail = res.Err.Error()
			uc.logger.Errorf(ctx, "internal.alert.usecase.runChannel: %s channel failed: %s", channel, res.Detail)
			uc.metrics.ObserveDispatch(channel, false)
		}
	}()

	if err := send(ctx); err != nil {
		res.Err = err
		res.Detail = describeFailure(err)
		uc.logger.Errorf(ctx, "internal.alert.usecase.runChannel: %s channel failed: %s", channel, res.Detail)
		uc.metrics.ObserveDispatch(channel, false)
		return res
	}
	res.OK = true
	uc.metrics.ObserveDispatch(channel, true)
	return res
}

func (uc *implUseCase) sendPrimary(ctx context.Context, payload model.AlertPayload) error {
	if uc.webhook == nil {
		return alert.ErrWebhookNotConfigured
	}
	return uc.webhook.Post(ctx, payload)
}

func (uc *implUseCase) sendSecondary(ctx context.Context, payload model.AlertPayload) error {
	if uc.bot == nil {
		return alert.ErrBotTokenNotConfigured
	}
	if uc.cfg.ChatID == "" {
		return alert.ErrRecipientNotConfigured
	}
	return uc.bot.SendMessage(ctx, uc.cfg.ChatID, buildBotMessage(uc.cfg.ServiceName, payload))
}
