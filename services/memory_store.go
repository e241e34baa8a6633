package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jakerich1/DietApi/models"
)

// memoryRepository keeps entries in process memory. Used by DB_DRIVER=memory
// for local runs and by tests.
type memoryRepository[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
	id      func(*T) *string
	created func(*T) time.Time
}

func newMemoryRepository[T any](id func(*T) *string, created func(*T) time.Time) *memoryRepository[T] {
	return &memoryRepository[T]{entries: make(map[string]T), id: id, created: created}
}

func NewMemoryStore() *Store {
	return NewStore(
		newMemoryRepository(
			func(e *models.FoodEntry) *string { return &e.ID },
			func(e *models.FoodEntry) time.Time { return e.Created },
		),
		newMemoryRepository(
			func(e *models.WaterEntry) *string { return &e.ID },
			func(e *models.WaterEntry) time.Time { return e.Created },
		),
		nil,
	)
}

func (r *memoryRepository[T]) Create(_ context.Context, entry *T) error {
	id := r.id(entry)
	if *id == "" {
		*id = uuid.NewString()
	}
	r.mu.Lock()
	r.entries[*id] = *entry
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository[T]) FindByID(_ context.Context, id string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

func (r *memoryRepository[T]) DeleteByID(_ context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository[T]) FindCreatedBetween(_ context.Context, start, end time.Time) ([]T, error) {
	r.mu.RLock()
	out := make([]T, 0)
	for _, e := range r.entries {
		c := r.created(&e)
		if !c.Before(start) && !c.After(end) {
			out = append(out, e)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return r.created(&out[i]).Before(r.created(&out[j]))
	})
	return out, nil
}
