package catalog

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Load(ctx context.Context, bakeryID string) (Data, error) {
	return s.repo.Load(ctx, bakeryID)
}

// Save normalizes nil collections to empty ones before handing the aggregate
// to the repository; an admin payload that omits a collection means "empty",
// not "keep the old rows".
func (s *Service) Save(ctx context.Context, bakeryID string, data Data) error {
	if data.Products == nil {
		data.Products = []Product{}
	}
	if data.Sections == nil {
		data.Sections = []Section{}
	}
	if data.Extras == nil {
		data.Extras = []Extra{}
	}
	if data.Tags == nil {
		data.Tags = []Tag{}
	}
	return s.repo.Save(ctx, bakeryID, data)
}
