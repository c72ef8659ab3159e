package uow

import (
	"context"

	"declatogo-backend/internal/domain/declaration"
	"declatogo-backend/internal/domain/notification"
)

type Repos struct {
	Declarations  declaration.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the declaration row first, then pass it in
	WithinDeclarationTx(ctx context.Context, declarationID string, fn func(r Repos, d *declaration.Declaration) error) error
}
