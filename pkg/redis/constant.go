package redis

import "time"

const (
	// DefaultConnectTimeout bounds the ping made by New.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultRangeCount is used by XRevRange when count is not positive.
	DefaultRangeCount int64 = 100
)
