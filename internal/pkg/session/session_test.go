package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/clubhub/internal/app/models"
)

func setupStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStore_RevokeUser(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	revokedAt := time.Date(2026, 3, 1, 12, 0, 0, 900*int(time.Millisecond), time.UTC)
	store.now = func() time.Time { return revokedAt }
	userID := models.UserID("u-1")

	require.NoError(t, store.RevokeUser(ctx, userID))

	assert.True(t, mr.Exists("auth:revoked_before:u-1"))
	assert.Equal(t, time.Hour, mr.TTL("auth:revoked_before:u-1"))

	t.Run("Should reject a token issued before the marker", func(t *testing.T) {
		revoked, err := store.IsRevoked(ctx, userID, revokedAt.Add(-time.Minute))
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Should reject a token issued earlier in the same second", func(t *testing.T) {
		revoked, err := store.IsRevoked(ctx, userID, revokedAt.Add(-800*time.Millisecond))
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Should reject a token issued at the marker", func(t *testing.T) {
		revoked, err := store.IsRevoked(ctx, userID, revokedAt)
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Should accept a token issued after the marker", func(t *testing.T) {
		revoked, err := store.IsRevoked(ctx, userID, revokedAt.Add(time.Millisecond))
		require.NoError(t, err)
		assert.False(t, revoked)

		revoked, err = store.IsRevoked(ctx, userID, revokedAt.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestRedisStore_NoMarker(t *testing.T) {
	store, _ := setupStore(t)

	revoked, err := store.IsRevoked(context.Background(), models.UserID("nobody"), time.Now())
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisStore_CorruptMarker(t *testing.T) {
	store, mr := setupStore(t)
	require.NoError(t, mr.Set("auth:revoked_before:u-2", "garbage"))

	_, err := store.IsRevoked(context.Background(), models.UserID("u-2"), time.Now())
	assert.Error(t, err)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	err := store.RevokeUser(context.Background(), models.UserID("u-3"))
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}

func TestNoopStore(t *testing.T) {
	var r Revoker = NoopStore{}
	require.NoError(t, r.RevokeUser(context.Background(), "u-1"))
	revoked, err := r.IsRevoked(context.Background(), "u-1", time.Time{})
	require.NoError(t, err)
	assert.False(t, revoked)
}
