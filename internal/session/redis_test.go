//go:build integration

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/XavierBriggs/Janus/internal/session"
	"github.com/XavierBriggs/Janus/pkg/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*session.RedisStore, *redis.Client) {
	t.Helper()

	// Setup test Redis (requires Redis running)
	redisClient := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})
	t.Cleanup(func() { redisClient.Close() })

	store := session.NewRedisStore(redisClient, ttl)
	if err := store.Ping(context.Background()); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	redisClient.FlushDB(context.Background())
	return store, redisClient
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, time.Minute)

	missing, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, missing)

	state := models.SessionState{ID: "abc", Date: "2024-04-05", ActiveTab: "best-bets", UpdatedAt: time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)}
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state.Date, loaded.Date)
	assert.Equal(t, state.ActiveTab, loaded.ActiveTab)
	assert.True(t, state.UpdatedAt.Equal(loaded.UpdatedAt))

	require.NoError(t, store.Delete(ctx, "abc"))
	gone, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRedisStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, client := newRedisStore(t, time.Minute)

	require.NoError(t, store.Save(ctx, models.SessionState{ID: "abc"}))

	ttl, err := client.TTL(ctx, "janus:session:abc").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)
}

func TestRedisStore_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	store, client := newRedisStore(t, time.Minute)

	require.NoError(t, client.Set(ctx, "janus:session:bad", "not json", time.Minute).Err())

	loaded, err := store.Load(ctx, "bad")
	assert.ErrorContains(t, err, "decode session bad")
	assert.Nil(t, loaded)
}
