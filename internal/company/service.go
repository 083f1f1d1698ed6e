package company

import "context"

// Service provides company profile logic.
type Service struct {
	repo Repository
}

// NewService constructs a company service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the profile, or nil when never initialized.
func (s *Service) Get(ctx context.Context) (*Company, error) {
	return s.repo.Get(ctx)
}

// Upsert creates or replaces the profile. The operation is idempotent.
func (s *Service) Upsert(ctx context.Context, req UpsertCompanyRequest) error {
	return s.repo.Upsert(ctx, req)
}
