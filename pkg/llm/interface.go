package llm

import (
	"context"
	"strings"

	"crisis-alert-srv/pkg/log"

	"github.com/go-resty/resty/v2"
)

// IClient produces conversational replies from an OpenAI-compatible API.
type IClient interface {
	Reply(ctx context.Context, in ReplyInput) (string, error)
	// Configured is false when no API key was provided.
	Configured() bool
}

// New never fails: without an API key every Reply returns ErrNotConfigured.
func New(l log.Logger, cfg Config) IClient {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &clientImpl{l: l, cfg: cfg, client: client}
}
