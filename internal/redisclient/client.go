// Package redisclient builds the go-redis client backing the listing cache.
package redisclient

import (
	"context"
	"fmt"
	"time"

	"hacker-menu/internal/config"

	"github.com/redis/go-redis/v9"
)

// New creates a client for the cache server described by cfg.
func New(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Check pings rdb and returns the round-trip time.
func Check(ctx context.Context, rdb *redis.Client) (time.Duration, error) {
	start := time.Now()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return 0, fmt.Errorf("redis %s unreachable: %w", rdb.Options().Addr, err)
	}
	return time.Since(start), nil
}
