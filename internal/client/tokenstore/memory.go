package tokenstore

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. It backs tests and runs without a
// database file.
type MemoryStore struct {
	mu       sync.RWMutex
	token    string
	revision int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != "", nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == token {
		return nil
	}
	s.token = token
	s.revision++
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}

func (s *MemoryStore) ClearIf(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.token != token {
		return false, nil
	}
	s.token = ""
	s.revision++
	return true, nil
}

func (s *MemoryStore) Revision(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision, nil
}
