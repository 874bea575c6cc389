package llm

import (
	"time"

	"crisis-alert-srv/pkg/log"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL      string
	APIKey       string
	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	Timeout      time.Duration
}

// ReplyInput is one user turn.
type ReplyInput struct {
	Message          string
	EmotionalContext string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type clientImpl struct {
	l      log.Logger
	cfg    Config
	client *resty.Client
}
