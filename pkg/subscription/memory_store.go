package subscription

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]Subscription
}

// NewInMemStore returns a Store backed by a process-local map.
// Suitable for tests and the demo server mode.
func NewInMemStore() Store {
	return &memoryStore{subs: make(map[uuid.UUID]Subscription)}
}

func (s *memoryStore) Get(ctx context.Context, tenantID uuid.UUID) (*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[tenantID]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy out so callers cannot mutate stored state.
	return &sub, nil
}

func (s *memoryStore) Save(ctx context.Context, sub *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[sub.TenantID] = *sub
	return nil
}
