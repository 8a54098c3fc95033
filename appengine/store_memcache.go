package appengine

import (
	"context"
	"encoding/json"
	"time"

	"google.golang.org/appengine/memcache"

	"github.com/canmore/go-logincode"
)

// MemcacheStore keeps attempt state in App Engine memcache.
type MemcacheStore struct {
	KeyPrefix string
}

func (s MemcacheStore) Put(ctx context.Context, id string, state logincode.AttemptState, ttl time.Duration) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return memcache.Set(ctx, &memcache.Item{
		Key:        s.KeyPrefix + id,
		Value:      b,
		Expiration: ttl,
	})
}

func (s MemcacheStore) Get(ctx context.Context, id string) (logincode.AttemptState, error) {
	item, err := memcache.Get(ctx, s.KeyPrefix+id)
	if err == memcache.ErrCacheMiss {
		// No attempt under this key
		return logincode.AttemptState{}, logincode.ErrAttemptNotFound
	} else if err != nil {
		return logincode.AttemptState{}, err
	}

	var state logincode.AttemptState
	if err := json.Unmarshal(item.Value, &state); err != nil {
		return logincode.AttemptState{}, err
	}
	return state, nil
}

func (s MemcacheStore) Delete(ctx context.Context, id string) error {
	return memcache.Delete(ctx, s.KeyPrefix+id)
}
