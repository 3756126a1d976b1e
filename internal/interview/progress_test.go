package interview

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-client/internal/common/cache"
	"ats-client/internal/common/logger"
)

func TestProgressGuard_Memory(t *testing.T) {
	guard := NewProgressGuard(cache.NewMemoryStore(), time.Hour, logger.NewTestLogger(t))
	ctx := context.Background()

	assert.False(t, guard.Observe(ctx, 1, 0))
	assert.False(t, guard.Observe(ctx, 1, 0), "same index is not a regression")
	assert.False(t, guard.Observe(ctx, 1, 2))
	assert.True(t, guard.Observe(ctx, 1, 1), "lower index than observed is a regression")

	// The highest observation wins: the guard still remembers 2.
	assert.True(t, guard.Observe(ctx, 1, 0))
	assert.False(t, guard.Observe(ctx, 1, 2))

	// Interviews are tracked independently.
	assert.False(t, guard.Observe(ctx, 2, 0))
}

func TestProgressGuard_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cache.NewRedisStoreFromClient(client)
	t.Cleanup(func() { store.Close() })

	guard := NewProgressGuard(store, time.Hour, logger.NewTestLogger(t))
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	assert.False(t, guard.Observe(ctx, 7, 1))
	assert.True(t, guard.Observe(ctx, 7, 0))

	// A second client instance sharing the store sees the same history.
	other := NewProgressGuard(store, time.Hour, logger.NewTestLogger(t))
	assert.True(t, other.Observe(ctx, 7, 0))
}

func TestProgressGuard_CacheFailureIsAdvisory(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := cache.NewRedisStoreFromClient(client)
	guard := NewProgressGuard(store, time.Hour, logger.NewNoOpLogger())

	mock.ExpectGet("interview:progress:3").SetErr(assert.AnError)
	mock.ExpectSet("interview:progress:3", "1", time.Hour).SetErr(assert.AnError)

	// A broken cache never blocks the interview.
	assert.False(t, guard.Observe(context.Background(), 3, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
