package mysql

import (
	"context"

	catDomain "declatogo-backend/internal/domain/category"

	"gorm.io/gorm"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]catDomain.Category, error) {
	q := r.db.WithContext(ctx).Model(&catDomain.Category{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var out []catDomain.Category
	res := q.Order("label ASC").Find(&out)
	return out, res.Error
}

func (r *CategoryRepository) GetByCode(ctx context.Context, code string) (*catDomain.Category, error) {
	var out catDomain.Category
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

// SeedIfEmpty loads the bootstrap taxonomy on first boot.
func (r *CategoryRepository) SeedIfEmpty(ctx context.Context) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&catDomain.Category{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	seed := catDomain.Seed()
	for i := range seed {
		seed[i].Active = true
	}
	return r.db.WithContext(ctx).Create(&seed).Error
}
