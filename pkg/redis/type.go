package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// StreamEntry is one entry read back from a stream.
type StreamEntry struct {
	ID     string
	Values map[string]string
}

type redisImpl struct {
	client *goredis.Client
}
