package keyvalue

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCommander is the subset of *redis.Client the Redis store needs.
type redisCommander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
