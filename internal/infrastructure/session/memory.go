package session

import (
	"context"
	"sync"

	appsession "github.com/jhoicas/storefront-api/internal/application/session"
)

var _ appsession.Store = (*MemoryStore)(nil)

// MemoryStore sesiones en un mapa local al proceso. Se pierden al reiniciar.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemoryStore construye el store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]string)}
}

func (s *MemoryStore) Save(_ context.Context, token, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = email
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.sessions[token]
	return email, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
