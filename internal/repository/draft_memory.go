package repository

import (
	"context"
	"sync"
)

type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: map[string][]byte{}}
}

func (s *MemoryDraftStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.drafts[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

func (s *MemoryDraftStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	s.drafts[key] = append([]byte(nil), data...)
	s.mu.Unlock()
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.drafts, key)
	s.mu.Unlock()
	return nil
}
