package usecase

import (
	"context"
	"strings"

	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/internal/chat"
	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent"
	"crisis-alert-srv/pkg/llm"
)

func (uc *implUseCase) Assess(ctx context.Context, message string) model.RiskAssessment {
	a := uc.scorer.Assess(message)
	uc.metrics.ObserveAssessment(a.Level.String())
	return a
}

func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ChatOutput{}, chat.ErrMessageRequired
	}
	if strings.TrimSpace(input.UserID) == "" {
		return chat.ChatOutput{}, chat.ErrUserIDRequired
	}

	a := uc.Assess(ctx, input.Message)
	out := chat.ChatOutput{Assessment: a}

	if a.RequiresIntervention {
		if len(a.Triggers) == 0 {
			uc.l.Errorf(ctx, "internal.chat.usecase.Chat: level %s without triggers for user %s", a.Level, input.UserID)
		}
		out.AlertSent = uc.intervene(ctx, input, a)

		if text := uc.responses.EmergencyResponse(input.Lang, a.Level); text != "" {
			out.Response = text
			out.IsEmergencyResponse = true
			return out, nil
		}
	}

	out.Response = uc.reply(ctx, input)
	return out, nil
}

// intervene dispatches the alert and records the event with the dispatch outcome.
func (uc *implUseCase) intervene(ctx context.Context, input chat.ChatInput, a model.RiskAssessment) bool {
	var outcome model.DeliveryOutcome
	if uc.alertUC != nil {
		outcome = uc.alertUC.DispatchRiskAlert(ctx, alert.RiskAlertInput{
			UserID:     input.UserID,
			Message:    input.Message,
			Assessment: a,
			UserEmail:  input.UserEmail,
			SessionID:  input.SessionID,
		})
	} else {
		uc.l.Errorf(ctx, "internal.chat.usecase.intervene: no alert dispatcher, user=%s level=%s", input.UserID, a.Level)
	}

	if uc.eventUC != nil {
		uc.eventUC.Record(ctx, riskevent.RecordInput{
			UserID:     input.UserID,
			Message:    input.Message,
			Assessment: a,
			Outcome:    outcome,
			UserEmail:  input.UserEmail,
			SessionID:  input.SessionID,
		})
	}
	return outcome.Delivered()
}

// reply asks the conversational model, falling back to the catalog text.
func (uc *implUseCase) reply(ctx context.Context, input chat.ChatInput) string {
	fallback := uc.responses.Catalog(input.Lang).Fallback
	if uc.llm == nil {
		return fallback
	}
	text, err := uc.llm.Reply(ctx, llm.ReplyInput{
		Message:          input.Message,
		EmotionalContext: input.EmotionalContext,
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.chat.usecase.reply: %v", err)
		return fallback
	}
	return text
}
