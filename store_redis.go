package logincode

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisPrefix = "logincode-attempt::"
)

// RedisStore is a SessionStore that keeps attempt state in Redis, relying on
// key TTLs for expiry.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates and returns a new `RedisStore`.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

func redisKey(id string) string {
	return redisPrefix + id
}

// Put stores the attempt state under its ID.
func (s RedisStore) Put(ctx context.Context, id string, state AttemptState, ttl time.Duration) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey(id), b, ttl).Err()
}

// Get loads the attempt state for an ID.
func (s RedisStore) Get(ctx context.Context, id string) (AttemptState, error) {
	r, err := s.client.Get(ctx, redisKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return AttemptState{}, ErrAttemptNotFound
		}
		return AttemptState{}, err
	}
	var state AttemptState
	if err := json.Unmarshal([]byte(r), &state); err != nil {
		return AttemptState{}, err
	}
	return state, nil
}

// Delete removes an attempt from the store.
func (s RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKey(id)).Err()
}
