package contracts

import "context"

// KeyValueStore is the device local persisted store. Get returns an empty
// string and no error when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
