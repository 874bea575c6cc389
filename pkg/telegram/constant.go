package telegram

import "time"

const (
	DefaultBaseURL    = "https://api.telegram.org"
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 0
	DefaultParseMode  = "HTML"

	redacted = "<redacted>"
)
