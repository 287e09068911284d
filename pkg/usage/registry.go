package usage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// CounterFunc returns the current count of a resource for a workspace.
// Implementations must be read-only and fast; they run on every request.
type CounterFunc func(ctx context.Context, workspaceID uuid.UUID) (int64, error)

// Registry maps resources to their counter functions.
type Registry struct {
	mu       sync.RWMutex
	counters map[Resource]CounterFunc
}

// NewRegistry returns an empty counter registry.
func NewRegistry() *Registry {
	return &Registry{counters: make(map[Resource]CounterFunc)}
}

// Register adds or replaces the counter for a resource. Nil counters are
// ignored.
func (r *Registry) Register(res Resource, counter CounterFunc) {
	if counter == nil {
		return
	}
	r.mu.Lock()
	r.counters[res] = counter
	r.mu.Unlock()
}

// Get returns the counter registered for a resource.
func (r *Registry) Get(res Resource) (CounterFunc, bool) {
	r.mu.RLock()
	counter, ok := r.counters[res]
	r.mu.RUnlock()
	return counter, ok
}
