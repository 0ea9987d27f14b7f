package checkers

import (
	"context"
	"log/slog"
	"time"
)

// Pinger is the slice of the redis cache the checker needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RedisChecker probes the cache. The cache is best-effort, so a failed ping
// is logged but never fails readiness.
type RedisChecker struct {
	cache Pinger
}

func NewRedisChecker(cache Pinger) *RedisChecker {
	return &RedisChecker{cache: cache}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := c.cache.Ping(ctx); err != nil {
		slog.Warn("redis unreachable", "error", err)
	}
	return nil
}
