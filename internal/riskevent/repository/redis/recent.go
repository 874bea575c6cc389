package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent/repository"
	postgres "crisis-alert-srv/pkg/postgre"
)

func (p *implStream) Recent(ctx context.Context, opts repository.ListOptions) ([]model.RiskEvent, error) {
	window := int64(opts.Limit)
	if opts.UserID != "" || opts.Level != "" {
		window = DefaultScanWindow
	}

	entries, err := p.redis.XRevRange(ctx, p.stream, window)
	if err != nil {
		p.l.Errorf(ctx, "internal.riskevent.repository.redis.Recent: %v", err)
		return nil, err
	}

	events := make([]model.RiskEvent, 0, opts.Limit)
	for _, entry := range entries {
		e, err := decodeEvent(entry.Values)
		if err != nil {
			p.l.Warnf(ctx, "internal.riskevent.repository.redis.Recent: skip entry %s: %v", entry.ID, err)
			continue
		}
		if opts.UserID != "" && e.UserID != opts.UserID {
			continue
		}
		if opts.Level != "" && e.Level.String() != opts.Level {
			continue
		}
		events = append(events, e)
		if len(events) == opts.Limit {
			break
		}
	}
	return events, nil
}

func decodeEvent(v map[string]string) (model.RiskEvent, error) {
	if err := postgres.IsUUID(v["id"]); err != nil {
		return model.RiskEvent{}, err
	}
	level, err := model.ParseRiskLevel(v["risk_level"])
	if err != nil {
		return model.RiskEvent{}, err
	}
	score, err := strconv.Atoi(v["score"])
	if err != nil {
		return model.RiskEvent{}, fmt.Errorf("score: %w", err)
	}
	var triggers []string
	if err := json.Unmarshal([]byte(v["triggers"]), &triggers); err != nil {
		return model.RiskEvent{}, fmt.Errorf("triggers: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, v["created_at"])
	if err != nil {
		return model.RiskEvent{}, fmt.Errorf("created_at: %w", err)
	}

	return model.RiskEvent{
		ID:             v["id"],
		UserID:         v["user_id"],
		Level:          level,
		Score:          score,
		Triggers:       triggers,
		Delivered:      v["delivered"] == "true",
		PrimaryOK:      v["primary_ok"] == "true",
		SecondaryOK:    v["secondary_ok"] == "true",
		LexiconVersion: v["lexicon_version"],
		SessionID:      v["session_id"],
		CreatedAt:      createdAt,
	}, nil
}
