package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func (r *redisImpl) XAdd(ctx context.Context, stream string, maxLen int64, values map[string]any) (string, error) {
	if strings.TrimSpace(stream) == "" {
		return "", ErrStreamRequired
	}
	args := &goredis.XAddArgs{
		Stream: stream,
		Values: values,
	}
	if maxLen > 0 {
		args.MaxLen = maxLen
		args.Approx = true
	}
	id, err := r.client.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("redis: xadd %s: %w", stream, err)
	}
	return id, nil
}

func (r *redisImpl) XRevRange(ctx context.Context, stream string, count int64) ([]StreamEntry, error) {
	if strings.TrimSpace(stream) == "" {
		return nil, ErrStreamRequired
	}
	if count <= 0 {
		count = DefaultRangeCount
	}
	msgs, err := r.client.XRevRangeN(ctx, stream, "+", "-", count).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: xrevrange %s: %w", stream, err)
	}
	out := make([]StreamEntry, 0, len(msgs))
	for _, m := range msgs {
		vals := make(map[string]string, len(m.Values))
		for k, v := range m.Values {
			vals[k] = fmt.Sprint(v)
		}
		out = append(out, StreamEntry{ID: m.ID, Values: vals})
	}
	return out, nil
}

// Ping checks if the connection is alive and returns latency.
func (r *redisImpl) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := r.client.Ping(ctx).Err(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}

func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
