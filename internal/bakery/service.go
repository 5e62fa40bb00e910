package bakery

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Bakery, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) GetByID(ctx context.Context, id string) (Bakery, error) {
	return s.repo.GetByID(ctx, id)
}

// ResolveSlug satisfies catalog.SlugResolver.
func (s *Service) ResolveSlug(ctx context.Context, slug string) (string, error) {
	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

// Signup creates the tenant record. The slug is derived from the display
// name and must be free; the catalog starts empty (settings blob {} and no
// collection rows) until the first admin save.
func (s *Service) Signup(ctx context.Context, name, userID string) (Bakery, error) {
	slug := GenerateSlug(name)

	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return Bakery{}, err
	}
	if exists {
		return Bakery{}, ErrSlugExists
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(ctx, Bakery{
		ID:        uuid.NewString(),
		Slug:      slug,
		Name:      name,
		Settings:  []byte(`{}`),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
