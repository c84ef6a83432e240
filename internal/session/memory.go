package session

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps sessions in process memory. Entries never expire.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]int),
	}
}

func (s *MemoryStore) IDs(_ context.Context, sid, key string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.data[storeKey(sid, key)]), nil
}

func (s *MemoryStore) Update(_ context.Context, sid, key string, fn func([]int) []int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := storeKey(sid, key)
	ids := fn(slices.Clone(s.data[k]))
	s.data[k] = slices.Clone(ids)

	return ids, nil
}

func storeKey(sid, key string) string {
	return "session:" + sid + ":" + key
}
