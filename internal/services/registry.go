package services

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds the per-handle state the presentation layer opens and
// discards: analysis dialogs and chat sessions.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[uuid.UUID]T)}
}

func (r *Registry[T]) Put(id uuid.UUID, item T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[id] = item
}

func (r *Registry[T]) Get(id uuid.UUID) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok
}

func (r *Registry[T]) Delete(id uuid.UUID) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	delete(r.items, id)
	return item, ok
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Each calls fn for a snapshot of the registered items.
func (r *Registry[T]) Each(fn func(id uuid.UUID, item T)) {
	r.mu.RLock()
	snapshot := make(map[uuid.UUID]T, len(r.items))
	for id, item := range r.items {
		snapshot[id] = item
	}
	r.mu.RUnlock()

	for id, item := range snapshot {
		fn(id, item)
	}
}
