package webhook

import "time"

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 0
	DefaultRetryDelay = 500 * time.Millisecond

	UserAgent = "Crisis-Alert/1.0"

	// maxErrorBodyLen caps how much of a failed response body is kept for diagnostics.
	maxErrorBodyLen = 512
)
