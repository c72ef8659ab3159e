package catmock

import (
	"context"

	domain "declatogo-backend/internal/domain/category"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies category.Repository.
// The zero value resolves every code against the seed taxonomy.
type Repo struct {
	ListFn      func(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	GetByCodeFn func(ctx context.Context, code string) (*domain.Category, error)
}

func (m *Repo) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, activeOnly)
	}
	return domain.Seed(), nil
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Category, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	for _, c := range domain.Seed() {
		if c.Code == code {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}
