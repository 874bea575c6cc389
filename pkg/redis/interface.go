package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type IRedis interface {
	// XAdd appends values to stream. A positive maxLen trims the stream approximately.
	XAdd(ctx context.Context, stream string, maxLen int64, values map[string]any) (string, error)
	// XRevRange returns up to count entries, newest first.
	XRevRange(ctx context.Context, stream string, count int64) ([]StreamEntry, error)
	Ping(ctx context.Context) (time.Duration, error)
	Close() error
	GetClient() *goredis.Client
}

// New connects and pings. It fails when the server is unreachable.
func New(cfg Config) (IRedis, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, ErrInvalidPort
	}

	opts := &goredis.Options{
		Addr:            fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisImpl{client: client}, nil
}

// NewFromClient wraps an existing client without pinging it.
func NewFromClient(client *goredis.Client) IRedis {
	return &redisImpl{client: client}
}
