package usecase

import (
	"time"

	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/internal/metrics"
	"crisis-alert-srv/pkg/log"
	"crisis-alert-srv/pkg/telegram"
	"crisis-alert-srv/pkg/webhook"
)

type implUseCase struct {
	logger  log.Logger
	webhook webhook.IWebhook
	bot     telegram.IBot
	metrics *metrics.Metrics
	cfg     alert.Config
	clock   func() time.Time
}

// New builds the dispatcher. A nil webhook or bot means that channel is not
// configured: it fails on every dispatch instead of failing startup.
func New(logger log.Logger, wh webhook.IWebhook, bot telegram.IBot, m *metrics.Metrics, cfg alert.Config) alert.UseCase {
	if cfg.ServiceName == "" {
		cfg.ServiceName = alert.DefaultServiceName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = alert.DefaultTimeout
	}
	return &implUseCase{
		logger:  logger,
		webhook: wh,
		bot:     bot,
		metrics: m,
		cfg:     cfg,
		clock:   time.Now,
	}
}
