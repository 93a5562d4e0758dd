package keyvalue

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value, err := store.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Empty(t, value, "missing key should read as empty")

	require.NoError(t, store.Set(ctx, "auth_token", "abc"))
	require.NoError(t, store.Set(ctx, "token", "abc"))

	value, err = store.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	require.NoError(t, store.Delete(ctx, "auth_token", "token", "never_set"))
	value, _ = store.Get(ctx, "token")
	assert.Empty(t, value)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	t.Run("Missing File Reads Empty", func(t *testing.T) {
		value, err := store.Get(ctx, "username")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Values Survive A New Store", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "username", "pharmacist"))
		require.NoError(t, store.Set(ctx, "user_role", "admin"))

		reopened, err := NewFileStore(path)
		require.NoError(t, err)
		value, err := reopened.Get(ctx, "username")
		require.NoError(t, err)
		assert.Equal(t, "pharmacist", value)
	})

	t.Run("Delete Removes Keys", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "username"))
		value, err := store.Get(ctx, "username")
		require.NoError(t, err)
		assert.Empty(t, value)

		role, err := store.Get(ctx, "user_role")
		require.NoError(t, err)
		assert.Equal(t, "admin", role, "other keys should be untouched")
	})

	t.Run("Corrupt File Surfaces Error", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		_, err := store.Get(ctx, "username")
		assert.Error(t, err)
	})
}

type mockRedis struct {
	mock.Mock
}

func (m *mockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Get Prefixes Key", func(t *testing.T) {
		client := new(mockRedis)
		client.On("Get", ctx, "device-1:auth_token").Return(redis.NewStringResult("abc", nil))

		store := newRedisStore(client, "device-1:")
		value, err := store.Get(ctx, "auth_token")

		require.NoError(t, err)
		assert.Equal(t, "abc", value)
		client.AssertExpectations(t)
	})

	t.Run("Get Missing Key", func(t *testing.T) {
		client := new(mockRedis)
		client.On("Get", ctx, "device-1:token").Return(redis.NewStringResult("", redis.Nil))

		store := newRedisStore(client, "device-1:")
		value, err := store.Get(ctx, "token")

		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Get Failure", func(t *testing.T) {
		client := new(mockRedis)
		client.On("Get", ctx, "device-1:token").Return(redis.NewStringResult("", errors.New("connection refused")))

		store := newRedisStore(client, "device-1:")
		_, err := store.Get(ctx, "token")

		assert.Error(t, err)
	})

	t.Run("Set Without Expiry", func(t *testing.T) {
		client := new(mockRedis)
		client.On("Set", ctx, "device-1:username", "pharmacist", time.Duration(0)).Return(redis.NewStatusResult("OK", nil))

		store := newRedisStore(client, "device-1:")
		err := store.Set(ctx, "username", "pharmacist")

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Delete Prefixes Every Key", func(t *testing.T) {
		client := new(mockRedis)
		client.On("Del", ctx, []string{"device-1:auth_token", "device-1:token"}).Return(redis.NewIntResult(2, nil))

		store := newRedisStore(client, "device-1:")
		err := store.Delete(ctx, "auth_token", "token")

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Delete Nothing", func(t *testing.T) {
		client := new(mockRedis)
		store := newRedisStore(client, "device-1:")

		assert.NoError(t, store.Delete(ctx))
		client.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
	})
}
