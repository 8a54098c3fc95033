package logincode

import (
	"context"
	"sync"
	"time"
)

// MemStore is a SessionStore that keeps attempt state in memory, expiring
// entries periodically once their TTL passes.
type MemStore struct {
	mut         sync.Mutex
	data        map[string]memAttempt
	cleaner     *time.Ticker
	quitCleaner chan (struct{})
}

type memAttempt struct {
	State   AttemptState
	Expires time.Time
}

// NewMemStore creates and returns a new `MemStore`
func NewMemStore() *MemStore {
	ct := time.NewTicker(time.Second)
	ms := &MemStore{
		data:        make(map[string]memAttempt),
		quitCleaner: make(chan struct{}),
		cleaner:     ct,
	}
	// Run cleaner periodically
	go func(quit chan struct{}) {
	ticker:
		for {
			select {
			case <-ct.C:
				// Run clean cycle
				ms.Clean()
			case <-quit:
				// Release resources
				ct.Stop()
				break ticker
			}
		}
	}(ms.quitCleaner)
	return ms
}

func (s *MemStore) Put(ctx context.Context, id string, state AttemptState,
	ttl time.Duration) error {
	s.mut.Lock()
	defer s.mut.Unlock()
	s.data[id] = memAttempt{
		State:   state,
		Expires: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemStore) Get(ctx context.Context, id string) (AttemptState, error) {
	s.mut.Lock()
	defer s.mut.Unlock()
	a, ok := s.data[id]
	if !ok {
		// No known attempt under this ID
		return AttemptState{}, ErrAttemptNotFound
	}
	if time.Now().After(a.Expires) {
		// Attempt exists, but expired
		return AttemptState{}, ErrAttemptNotFound
	}
	return a.State, nil
}

func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mut.Lock()
	defer s.mut.Unlock()
	delete(s.data, id)
	return nil
}

// Clean removes expired entries from the store.
func (s *MemStore) Clean() {
	s.mut.Lock()
	defer s.mut.Unlock()
	for id, a := range s.data {
		if time.Now().After(a.Expires) {
			delete(s.data, id)
		}
	}
}

// Release disposes of the MemStore and any released resources
func (s *MemStore) Release() {
	s.cleaner.Stop()
	close(s.quitCleaner)
	s.data = nil
}
