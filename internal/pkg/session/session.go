package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yigit/clubhub/internal/app/models"
)

const keyPrefix = "auth:revoked_before:"

// Revoker invalidates every token of a user issued before a point in time
type Revoker interface {
	RevokeUser(ctx context.Context, userID models.UserID) error
	IsRevoked(ctx context.Context, userID models.UserID, issuedAt time.Time) (bool, error)
}

// Client is the subset of the Redis client the store needs
type Client interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisStore keeps one "revoked before" unix millisecond timestamp per user.
// Markers expire with the token lifetime since older tokens are already invalid by then.
type RedisStore struct {
	client Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore creates a revocation store; ttl should equal the token lifetime
func NewRedisStore(client Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func key(userID models.UserID) string {
	return keyPrefix + string(userID)
}

// RevokeUser marks all tokens issued up to now as invalid
func (s *RedisStore) RevokeUser(ctx context.Context, userID models.UserID) error {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.client.Set(ctx, key(userID), ts, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke sessions for user %s: %w", userID, err)
	}
	return nil
}

// IsRevoked reports whether a token issued at issuedAt is not newer than the user's marker.
// A token stamped in the same millisecond as the marker counts as revoked.
func (s *RedisStore) IsRevoked(ctx context.Context, userID models.UserID, issuedAt time.Time) (bool, error) {
	val, err := s.client.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read revocation marker for user %s: %w", userID, err)
	}

	revokedBefore, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("corrupt revocation marker for user %s: %w", userID, err)
	}
	return issuedAt.UnixMilli() <= revokedBefore, nil
}

// Ping checks Redis connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// NoopStore is used when Redis is disabled; nothing is ever revoked
type NoopStore struct{}

// RevokeUser does nothing
func (NoopStore) RevokeUser(context.Context, models.UserID) error { return nil }

// IsRevoked always reports false
func (NoopStore) IsRevoked(context.Context, models.UserID, time.Time) (bool, error) {
	return false, nil
}
