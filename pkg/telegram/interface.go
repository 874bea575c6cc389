package telegram

import (
	"context"
	"strings"

	"crisis-alert-srv/pkg/log"

	"github.com/go-resty/resty/v2"
)

// IBot sends messages through the Telegram Bot API.
type IBot interface {
	// SendMessage succeeds only when the API answers "ok": true.
	SendMessage(ctx context.Context, chatID, text string) error
	Close() error
}

func New(l log.Logger, cfg Config) (IBot, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, ErrTokenRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = DefaultRetryCount
	}
	if cfg.ParseMode == "" {
		cfg.ParseMode = DefaultParseMode
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &botImpl{
		l:         l,
		token:     token,
		parseMode: cfg.ParseMode,
		client:    client,
	}, nil
}
