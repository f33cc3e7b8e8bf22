package store

import (
	"context"
	"time"
)

// Registry adapts a Store to the engine's score-registry contract.
type Registry struct {
	store *Store
}

// NewRegistry wraps a store.
func NewRegistry(s *Store) *Registry {
	return &Registry{store: s}
}

// Best returns the recorded high score for a key.
func (r *Registry) Best(key string) (int, error) {
	return r.store.Best(context.Background(), key)
}

// SetBest records a new high score.
func (r *Registry) SetBest(key string, score int) error {
	return r.store.SetBest(context.Background(), key, score, time.Now())
}

// Persist is a no-op: SQLite writes are durable at commit.
func (r *Registry) Persist() error {
	return nil
}
