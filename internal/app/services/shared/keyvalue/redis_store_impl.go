package keyvalue

import (
	"context"
	"errors"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps the session keys of one device under a shared prefix, for
// kiosk dashboards that share a Redis instance.
type redisStore struct {
	client redisCommander
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) contracts.KeyValueStore {
	return newRedisStore(client, prefix)
}

func newRedisStore(client redisCommander, prefix string) *redisStore {
	return &redisStore{client: client, prefix: prefix}
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrKeyValueGet(err, key)
	}
	return data, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, r.prefix+key, value, 0).Err()
	if err != nil {
		return exceptions.ErrKeyValueSet(err, key)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = r.prefix + key
	}
	err := r.client.Del(ctx, prefixed...).Err()
	if err != nil {
		return exceptions.ErrKeyValueDelete(err)
	}
	return nil
}
