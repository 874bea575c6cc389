package usecase

import (
	"context"
	"strings"

	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent"
	"crisis-alert-srv/internal/riskevent/repository"
)

func (uc *implUseCase) List(ctx context.Context, input riskevent.ListInput) ([]model.RiskEvent, error) {
	if uc.repo == nil && uc.reader == nil {
		return nil, riskevent.ErrStoreUnavailable
	}

	limit := input.Limit
	if limit == 0 {
		limit = riskevent.DefaultListLimit
	}
	if limit < 0 || limit > riskevent.MaxListLimit {
		return nil, riskevent.ErrInvalidLimit
	}

	opts := repository.ListOptions{UserID: strings.TrimSpace(input.UserID), Limit: limit}
	if input.Level != "" {
		level, err := model.ParseRiskLevel(input.Level)
		if err != nil {
			return nil, err
		}
		opts.Level = level.String()
	}

	if uc.repo != nil {
		events, err := uc.repo.List(ctx, opts)
		if err == nil {
			return events, nil
		}
		uc.l.Errorf(ctx, "internal.riskevent.usecase.List: %v", err)
		if uc.reader == nil {
			return nil, err
		}
	}

	events, err := uc.reader.Recent(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.riskevent.usecase.List.Recent: %v", err)
		return nil, err
	}
	return events, nil
}
