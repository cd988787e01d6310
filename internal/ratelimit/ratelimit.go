package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"advice-engine/internal/config"
)

// Limiter enforces a fixed-window request cap per client key backed by
// Redis. A nil Limiter allows everything, so callers can hold one
// unconditionally.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	log    *zap.Logger
}

// New builds a Limiter from config. Returns nil when limiting is disabled.
func New(cfg config.RateLimitConfig, client *redis.Client, log *zap.Logger) *Limiter {
	if cfg.Requests <= 0 || client == nil {
		return nil
	}
	return &Limiter{
		client: client,
		limit:  cfg.Requests,
		window: time.Duration(cfg.WindowSeconds) * time.Second,
		log:    log,
	}
}

// Allow reports whether the given client key may make another request in
// the current window. Redis failures fail open: the request is allowed and
// the error logged, so a cache outage does not take the API down.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l == nil {
		return true
	}

	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.log.Warn("rate limiter unavailable, allowing request", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.log.Warn("failed to set rate limit window", zap.Error(err))
		}
	}

	return count <= int64(l.limit)
}

// NewClient dials Redis with the pool settings used across the service.
func NewClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Address == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
}
