package usecase

import (
	"context"
	"strings"

	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent"
)

func (uc *implUseCase) Record(ctx context.Context, input riskevent.RecordInput) {
	if input.Assessment.Level == "" {
		uc.l.Errorf(ctx, "internal.riskevent.usecase.Record: %v", riskevent.ErrInvalidEvent)
		return
	}
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		uc.l.Errorf(ctx, "internal.riskevent.usecase.Record: %v, recording as %q", riskevent.ErrMissingUserID, riskevent.UnknownUserID)
		userID = riskevent.UnknownUserID
	}

	triggers := input.Assessment.Triggers
	if triggers == nil {
		triggers = []string{}
	}
	e := model.RiskEvent{
		ID:             uc.newID(),
		UserID:         userID,
		Level:          input.Assessment.Level,
		Score:          input.Assessment.Score,
		Triggers:       triggers,
		Delivered:      input.Outcome.Delivered(),
		PrimaryOK:      input.Outcome.Primary.OK,
		SecondaryOK:    input.Outcome.Secondary.OK,
		LexiconVersion: input.Assessment.LexiconVersion,
		UserEmail:      input.UserEmail,
		SessionID:      input.SessionID,
		CreatedAt:      uc.clock().UTC(),
	}

	// Audit writes must survive a client disconnect.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.timeout)
	defer cancel()

	uc.l.Warnf(ctx, "internal.riskevent.usecase.Record: risk_event id=%s user=%s level=%s score=%d triggers=[%s] delivered=%t primary=%t secondary=%t lexicon=%s excerpt=%q",
		e.ID, e.UserID, e.Level, e.Score, strings.Join(e.Triggers, ","), e.Delivered, e.PrimaryOK, e.SecondaryOK, e.LexiconVersion,
		excerpt(input.Message, riskevent.LogExcerptLen))

	if uc.repo != nil {
		if err := uc.repo.Insert(ctx, e); err != nil {
			uc.l.Errorf(ctx, "internal.riskevent.usecase.Record: %s sink failed for %s: %v", riskevent.SinkPostgres, e.ID, err)
			uc.metrics.ObserveSinkFailure(riskevent.SinkPostgres)
		}
	}
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, e); err != nil {
			uc.l.Errorf(ctx, "internal.riskevent.usecase.Record: %s sink failed for %s: %v", riskevent.SinkRedis, e.ID, err)
			uc.metrics.ObserveSinkFailure(riskevent.SinkRedis)
		}
	}
}

func excerpt(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
