package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("miss on unknown key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "v", time.Hour))
		val, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", val)
	})

	t.Run("overwrite replaces the value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "v2", time.Hour))
		val, _, _ := store.Get(ctx, "k")
		assert.Equal(t, "v2", val)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "ephemeral", "v", time.Nanosecond))
		time.Sleep(5 * time.Millisecond)
		_, ok, err := store.Get(ctx, "ephemeral")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "pinned", "v", 0))
		_, ok, err := store.Get(ctx, "pinned")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	assert.NoError(t, store.Close())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	t.Run("miss on unknown key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "v", time.Hour))
		val, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", val)
	})

	t.Run("ttl expiry", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "ephemeral", "v", time.Minute))
		mr.FastForward(2 * time.Minute)
		_, ok, err := store.Get(ctx, "ephemeral")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRedisStore_PingFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { store.Close() })

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
