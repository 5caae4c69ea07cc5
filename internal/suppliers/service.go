package suppliers

import (
	"context"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Service applies the thin business rules on top of the repository.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of suppliers plus the total match count.
// Out-of-range paging values fall back to the defaults.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]Supplier, int, error) {
	if filters.Page < 1 {
		filters.Page = defaultPage
	}
	if filters.Limit < 1 {
		filters.Limit = defaultLimit
	}
	return s.repo.List(ctx, filters)
}

// Get fetches a single supplier by id.
func (s *Service) Get(ctx context.Context, id string) (*Supplier, error) {
	return s.repo.Get(ctx, id)
}

// Create validates required fields, defaults the status and inserts the
// record. Timestamps are stamped by the repository.
func (s *Service) Create(ctx context.Context, supplier *Supplier) (string, error) {
	if err := validate(supplier); err != nil {
		return "", err
	}
	if supplier.Status == "" {
		supplier.Status = StatusActive
	}
	return s.repo.Create(ctx, supplier)
}

// Update merges the supplied fields over the stored document. An update
// can blank out a required field; that matches the observed contract.
func (s *Service) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.repo.Update(ctx, id, fields)
}

// Delete removes a supplier. Attachment files are not cleaned up.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ExportAll returns every supplier for CSV export.
func (s *Service) ExportAll(ctx context.Context) ([]Supplier, error) {
	return s.repo.All(ctx)
}
