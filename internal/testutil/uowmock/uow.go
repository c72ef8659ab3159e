package uowmock

import (
	"context"
	"errors"

	"declatogo-backend/internal/domain/declaration"
	"declatogo-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinDeclarationTxFn func(ctx context.Context, declarationID string, fn func(r uow.Repos, d *declaration.Declaration) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW whose transactions simply run the body against
// the given repos — no atomicity, good enough for usecase tests.
func Passthrough(repos uow.Repos, lookup func(ctx context.Context, declarationID string) (*declaration.Declaration, error)) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinDeclarationTxFn: func(ctx context.Context, declarationID string, fn func(r uow.Repos, d *declaration.Declaration) error) error {
			d, err := lookup(ctx, declarationID)
			if err != nil {
				return err
			}
			return fn(repos, d)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinDeclarationTx(ctx context.Context, declarationID string, fn func(r uow.Repos, d *declaration.Declaration) error) error {
	if m.WithinDeclarationTxFn != nil {
		return m.WithinDeclarationTxFn(ctx, declarationID, fn)
	}
	return errUnimplemented
}
