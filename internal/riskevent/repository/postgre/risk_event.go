package postgre

import (
	"context"
	"encoding/json"
	"fmt"

	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent/repository"
	postgres "crisis-alert-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
)

func (r *implRepository) Insert(ctx context.Context, e model.RiskEvent) error {
	triggers, err := json.Marshal(nonNil(e.Triggers))
	if err != nil {
		return fmt.Errorf("marshal triggers: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertRiskEventQuery,
		e.ID,
		e.UserID,
		e.Level.String(),
		e.Score,
		triggers,
		e.Delivered,
		e.PrimaryOK,
		e.SecondaryOK,
		e.LexiconVersion,
		postgres.NullString(e.UserEmail),
		postgres.NullString(e.SessionID),
		e.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.riskevent.repository.postgre.Insert: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.RiskEvent, error) {
	var w postgres.Where
	if opts.UserID != "" {
		w.Add("user_id = ?", opts.UserID)
	}
	if opts.Level != "" {
		w.Add("risk_level = ?", opts.Level)
	}
	q := selectRiskEventsQuery + w.SQL() + " ORDER BY created_at DESC LIMIT " + w.Arg(opts.Limit)

	rows, err := r.db.QueryContext(ctx, q, w.Args()...)
	if err != nil {
		r.l.Errorf(ctx, "internal.riskevent.repository.postgre.List: %v", err)
		return nil, err
	}
	defer rows.Close()

	events := make([]model.RiskEvent, 0, opts.Limit)
	for rows.Next() {
		var (
			e         model.RiskEvent
			level     string
			triggers  []byte
			userEmail null.String
			sessionID null.String
		)
		if err := rows.Scan(&e.ID, &e.UserID, &level, &e.Score, &triggers, &e.Delivered, &e.PrimaryOK,
			&e.SecondaryOK, &e.LexiconVersion, &userEmail, &sessionID, &e.CreatedAt); err != nil {
			r.l.Errorf(ctx, "internal.riskevent.repository.postgre.List.Scan: %v", err)
			return nil, err
		}
		if err := json.Unmarshal(triggers, &e.Triggers); err != nil {
			return nil, fmt.Errorf("unmarshal triggers of %s: %w", e.ID, err)
		}
		e.Level = model.RiskLevel(level)
		e.UserEmail = userEmail.String
		e.SessionID = sessionID.String
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.riskevent.repository.postgre.List.Rows: %v", err)
		return nil, err
	}
	return events, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
