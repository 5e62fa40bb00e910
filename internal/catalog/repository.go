package catalog

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("bakery not found")
)

// Repository moves the aggregate between memory and storage. Save is a full
// replace of every collection; Load reconstructs the aggregate and returns
// ErrNotFound only when the bakery itself is missing.
type Repository interface {
	Save(ctx context.Context, bakeryID string, data Data) error
	Load(ctx context.Context, bakeryID string) (Data, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and demo scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Data
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{storage: make(map[string]Data)}
}

// Seed stores an aggregate for a bakery without going through Save.
func (r *InMemoryRepository) Seed(bakeryID string, data Data) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[bakeryID] = data
}

func (r *InMemoryRepository) Save(_ context.Context, bakeryID string, data Data) error {
	if bakeryID == "" {
		return ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[bakeryID] = clone(data)
	return nil
}

func (r *InMemoryRepository) Load(_ context.Context, bakeryID string) (Data, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.storage[bakeryID]
	if !ok {
		return Data{}, ErrNotFound
	}
	return clone(data), nil
}

// clone makes a shallow-safe copy so callers cannot mutate stored slices.
func clone(in Data) Data {
	out := in
	out.Products = append([]Product(nil), in.Products...)
	for i := range out.Products {
		out.Products[i].Sizes = append([]Size(nil), in.Products[i].Sizes...)
		out.Products[i].Tags = append([]string(nil), in.Products[i].Tags...)
	}
	out.Sections = append([]Section(nil), in.Sections...)
	for i := range out.Sections {
		out.Sections[i].ProductIDs = append([]string(nil), in.Sections[i].ProductIDs...)
	}
	out.Extras = append([]Extra(nil), in.Extras...)
	out.Tags = append([]Tag(nil), in.Tags...)
	return out
}
