// Package memory provides an in-memory snapshot backend. Nothing survives a
// restart; it backs the "memory" storage mode and the test suites.
package memory

import (
	"context"
	"sync"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
)

// KV stores snapshot values in a map guarded by a mutex.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory KV
func New() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value for key.
func (s *KV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put stores copies of all pairs.
func (s *KV) Put(_ context.Context, pairs map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range pairs {
		stored := make([]byte, len(value))
		copy(stored, value)
		s.data[key] = stored
	}
	return nil
}

// Close is a no-op for the in-memory backend.
func (s *KV) Close() error {
	return nil
}
