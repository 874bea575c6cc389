package telegram

import (
	"time"

	"crisis-alert-srv/pkg/log"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	Token      string
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	ParseMode  string
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

type botImpl struct {
	l         log.Logger
	token     string
	parseMode string
	client    *resty.Client
}
