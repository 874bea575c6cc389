package usecase

import (
	"time"

	"crisis-alert-srv/internal/metrics"
	"crisis-alert-srv/internal/riskevent"
	"crisis-alert-srv/internal/riskevent/repository"
	"crisis-alert-srv/pkg/log"
	postgres "crisis-alert-srv/pkg/postgre"
)

type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	publisher repository.Publisher
	reader    repository.Reader
	metrics   *metrics.Metrics
	timeout   time.Duration
	clock     func() time.Time
	newID     func() string
}

// New builds the event log. repo and publisher are optional sinks; the log line is always written.
// A publisher that is also a repository.Reader serves List when repo is absent or failing.
func New(l log.Logger, repo repository.Repository, publisher repository.Publisher, m *metrics.Metrics, timeout time.Duration) riskevent.UseCase {
	if timeout <= 0 {
		timeout = riskevent.DefaultTimeout
	}
	reader, _ := publisher.(repository.Reader)
	return &implUseCase{
		l:         l,
		repo:      repo,
		publisher: publisher,
		reader:    reader,
		metrics:   m,
		timeout:   timeout,
		clock:     time.Now,
		newID:     postgres.NewUUID,
	}
}
