package bakery

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound   = errors.New("bakery not found")
	ErrSlugExists = errors.New("slug already exists")
)

type Repository interface {
	GetBySlug(ctx context.Context, slug string) (Bakery, error)
	GetByID(ctx context.Context, id string) (Bakery, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, b Bakery) (Bakery, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and demo scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Bakery
}

func NewInMemoryRepository(seed []Bakery) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Bakery, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) GetBySlug(_ context.Context, slug string) (Bakery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.storage {
		if b.Slug == slug {
			return b, nil
		}
	}
	return Bakery{}, ErrNotFound
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (Bakery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.storage {
		if b.ID == id {
			return b, nil
		}
	}
	return Bakery{}, ErrNotFound
}

func (r *InMemoryRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.storage {
		if b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Create(_ context.Context, b Bakery) (Bakery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if existing.Slug == b.Slug {
			return Bakery{}, ErrSlugExists
		}
	}
	r.storage = append(r.storage, b)
	return b, nil
}
