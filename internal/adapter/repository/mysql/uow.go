package mysql

import (
	"context"

	"declatogo-backend/internal/domain/declaration"
	"declatogo-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Declarations:  &DeclarationRepository{db: tx},
			Notifications: &NotificationRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinDeclarationTx(ctx context.Context, declarationID string, fn func(r uow.Repos, d *declaration.Declaration) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		declRepo := &DeclarationRepository{db: tx}
		r := uow.Repos{
			Declarations:  declRepo,
			Notifications: &NotificationRepository{db: tx},
		}
		// lock the declaration row up-front to prevent races
		d, err := declRepo.getByDeclarationIDForUpdate(ctx, declarationID)
		if err != nil {
			return err
		}
		return fn(r, d)
	})
}
