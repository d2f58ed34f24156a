package sessions

import (
	"context"
	"sync"
)

// MemoryRepository is the test double for Repository.
type MemoryRepository struct {
	mu    sync.Mutex
	store map[string]*Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: map[string]*Session{}}
}

func (m *MemoryRepository) Create(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.store[s.SessionToken] = &cp
	return nil
}

func (m *MemoryRepository) GetByToken(ctx context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[token]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryRepository) DeleteByToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, token)
	return nil
}
