package redis

import (
	"crisis-alert-srv/internal/riskevent/repository"
	"crisis-alert-srv/pkg/log"
	pkgRedis "crisis-alert-srv/pkg/redis"
)

const (
	DefaultStream = "risk-events"
	DefaultMaxLen = 100000
	// DefaultScanWindow is how many stream entries Recent inspects when filtering.
	DefaultScanWindow = 1000
)

type implStream struct {
	l      log.Logger
	redis  pkgRedis.IRedis
	stream string
	maxLen int64
}

// New returns a stream on stream (DefaultStream when empty).
func New(l log.Logger, r pkgRedis.IRedis, stream string, maxLen int64) repository.Stream {
	if stream == "" {
		stream = DefaultStream
	}
	if maxLen < 0 {
		maxLen = DefaultMaxLen
	}
	return &implStream{l: l, redis: r, stream: stream, maxLen: maxLen}
}
