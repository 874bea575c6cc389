package repository

import (
	"context"

	"crisis-alert-srv/internal/model"
)

// Repository persists risk events.
type Repository interface {
	Insert(ctx context.Context, event model.RiskEvent) error
	List(ctx context.Context, opts ListOptions) ([]model.RiskEvent, error)
}

// Publisher fans risk events out to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event model.RiskEvent) error
}

// Reader serves recent events from a bounded window, newest first. It backs
// review when the durable store is disabled or failing.
type Reader interface {
	Recent(ctx context.Context, opts ListOptions) ([]model.RiskEvent, error)
}

// Stream is a publisher that can also read back what it published.
type Stream interface {
	Publisher
	Reader
}
