// apps/go-solver/internal/store/memory.go
//
// Generic in-memory session store.
// Backs the server's solver sessions and simulated games, keyed by ID.
//
// Characteristics:
//   - Values are stored by pointer; callers mutate them under their own lock.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Get returns ErrNotFound for missing IDs.

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for sessions.
type Store[T any] interface {
	// Save persists or updates a value under id.
	Save(ctx context.Context, id string, v *T) error

	// Get retrieves a value by ID.
	Get(ctx context.Context, id string) (*T, error)

	// Delete forgets id; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error
}

// Memory is a map-based Store implementation.
type Memory[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMemory constructs an empty in-memory store.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{items: make(map[string]*T)}
}

// Save adds or updates the value.
func (m *Memory[T]) Save(ctx context.Context, id string, v *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = v
	return nil
}

// Get looks up a value by ID.
func (m *Memory[T]) Get(ctx context.Context, id string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[id]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

// Delete removes id.
func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

// Len is the number of stored values.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
