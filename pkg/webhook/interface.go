package webhook

import (
	"context"
	"net/url"
	"strings"

	"crisis-alert-srv/pkg/log"

	"github.com/go-resty/resty/v2"
)

// IWebhook posts JSON documents to a single outbound URL.
type IWebhook interface {
	// Post marshals payload and sends it. Any non-2xx answer is a *StatusError.
	Post(ctx context.Context, payload any) error
	URL() string
	Close() error
}

// New validates cfg and builds a client. Zero-valued timing fields take the defaults.
func New(l log.Logger, cfg Config) (IWebhook, error) {
	raw := strings.TrimSpace(cfg.URL)
	if raw == "" {
		return nil, ErrURLRequired
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = DefaultRetryCount
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	w := &webhookImpl{l: l, url: raw}
	w.client = resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryDelay).
		SetRetryMaxWaitTime(cfg.RetryDelay).
		AddRetryCondition(failed).
		AddRetryHook(w.logRetry).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", UserAgent)
	return w, nil
}
