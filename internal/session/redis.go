package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// RedisStore keeps session state in Redis so a restart or a second
// instance can restore a browser's date and tab
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

var _ contracts.SessionStore = (*RedisStore)(nil)

// NewRedisStore creates a store; each save refreshes the key's ttl
func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Load returns the saved state or nil when the key is missing or expired.
// A corrupt entry is an error.
func (s *RedisStore) Load(ctx context.Context, id string) (*models.SessionState, error) {
	data, err := s.redis.Get(ctx, buildKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var state models.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &state, nil
}

// Save writes the state with the store ttl
func (s *RedisStore) Save(ctx context.Context, state models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, buildKey(state.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a session
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, buildKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Ping checks the connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

// buildKey creates the Redis key for a session
// Format: janus:session:{id}
func buildKey(id string) string {
	return "janus:session:" + id
}
