package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"crisis-alert-srv/internal/model"
)

// Publish appends e to the stream. The user's email is never written here.
func (p *implStream) Publish(ctx context.Context, e model.RiskEvent) error {
	triggers := e.Triggers
	if triggers == nil {
		triggers = []string{}
	}
	raw, err := json.Marshal(triggers)
	if err != nil {
		return err
	}

	values := map[string]any{
		"id":              e.ID,
		"user_id":         e.UserID,
		"risk_level":      e.Level.String(),
		"score":           strconv.Itoa(e.Score),
		"triggers":        string(raw),
		"delivered":       strconv.FormatBool(e.Delivered),
		"primary_ok":      strconv.FormatBool(e.PrimaryOK),
		"secondary_ok":    strconv.FormatBool(e.SecondaryOK),
		"lexicon_version": e.LexiconVersion,
		"created_at":      e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.SessionID != "" {
		values["session_id"] = e.SessionID
	}

	if _, err := p.redis.XAdd(ctx, p.stream, p.maxLen, values); err != nil {
		p.l.Errorf(ctx, "internal.riskevent.repository.redis.Publish: %v", err)
		return err
	}
	return nil
}
