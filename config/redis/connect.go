package redis

import (
	"context"
	"fmt"

	"crisis-alert-srv/config"
	"crisis-alert-srv/pkg/log"
	pkgRedis "crisis-alert-srv/pkg/redis"
)

// Connect initializes and returns a Redis client for the risk event stream.
func Connect(ctx context.Context, l log.Logger, cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	client, err := pkgRedis.New(pkgRedis.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Password:        cfg.Password,
		DB:              cfg.DB,
		UseTLS:          cfg.UseTLS,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	l.Infof(ctx, "config.redis.Connect: connected to %s:%d db=%d", cfg.Host, cfg.Port, cfg.DB)
	return client, nil
}

// Disconnect closes the Redis connection. A nil client is a no-op.
func Disconnect(client pkgRedis.IRedis) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
