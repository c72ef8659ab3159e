package declmock

import (
	"context"

	domain "declatogo-backend/internal/domain/declaration"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies declaration.Repository.
// Only fill in the function fields a test needs.
type Repo struct {
	CreateFn             func(ctx context.Context, d *domain.Declaration) error
	GetByDeclarationIDFn func(ctx context.Context, declarationID string) (*domain.Declaration, error)
	GetByIDForUpdateFn   func(ctx context.Context, id uint64) (*domain.Declaration, error)
	SaveFn               func(ctx context.Context, d *domain.Declaration) error
	SoftDeleteFn         func(ctx context.Context, d *domain.Declaration, deletedBy string) error
	CountByTypeInYearFn  func(ctx context.Context, t domain.Type, year int) (int64, error)
	FindMatchCandidateFn func(ctx context.Context, t domain.Type, pieceNumber string, excludeID uint64) (*domain.Declaration, error)
	UpdateMatchFieldsFn  func(ctx context.Context, id uint64, matchedID uint64, status domain.Status) error
	ClearMatchRefFn      func(ctx context.Context, id uint64) error
	ListFn               func(ctx context.Context, f domain.ListFilter) ([]domain.Declaration, error)
	SearchFn             func(ctx context.Context, q domain.SearchQuery) ([]domain.Declaration, error)
	StatsFn              func(ctx context.Context) (*domain.Stats, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Declaration) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDeclarationID(ctx context.Context, declarationID string) (*domain.Declaration, error) {
	if m.GetByDeclarationIDFn != nil {
		return m.GetByDeclarationIDFn(ctx, declarationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Declaration, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, d *domain.Declaration) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) SoftDelete(ctx context.Context, d *domain.Declaration, deletedBy string) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, d, deletedBy)
	}
	return nil
}

func (m *Repo) CountByTypeInYear(ctx context.Context, t domain.Type, year int) (int64, error) {
	if m.CountByTypeInYearFn != nil {
		return m.CountByTypeInYearFn(ctx, t, year)
	}
	return 0, nil
}

func (m *Repo) FindMatchCandidate(ctx context.Context, t domain.Type, pieceNumber string, excludeID uint64) (*domain.Declaration, error) {
	if m.FindMatchCandidateFn != nil {
		return m.FindMatchCandidateFn(ctx, t, pieceNumber, excludeID)
	}
	return nil, nil
}

func (m *Repo) UpdateMatchFields(ctx context.Context, id uint64, matchedID uint64, status domain.Status) error {
	if m.UpdateMatchFieldsFn != nil {
		return m.UpdateMatchFieldsFn(ctx, id, matchedID, status)
	}
	return nil
}

func (m *Repo) ClearMatchReference(ctx context.Context, id uint64) error {
	if m.ClearMatchRefFn != nil {
		return m.ClearMatchRefFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Declaration, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Declaration, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, q)
	}
	return nil, nil
}

func (m *Repo) Stats(ctx context.Context) (*domain.Stats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return &domain.Stats{}, nil
}
