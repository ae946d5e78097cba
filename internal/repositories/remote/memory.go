package remote

import (
	"context"
	"sync"

	"github.com/luismoralesarg/micro-log/internal/common"
)

// MemoryStore is an in-process Store used in tests and for local
// experimentation without remote infrastructure.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (s *MemoryStore) GetRecord(_ context.Context, accountID string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[accountID]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := r
	return &out, nil
}

func (s *MemoryStore) PutRecord(_ context.Context, accountID string, r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[accountID] = *r
	return nil
}
