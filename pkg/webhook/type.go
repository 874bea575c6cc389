package webhook

import (
	"time"

	"crisis-alert-srv/pkg/log"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	URL        string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

type webhookImpl struct {
	l      log.Logger
	url    string
	client *resty.Client
}
