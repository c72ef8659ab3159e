package category

import "context"

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Category, error)
	GetByCode(ctx context.Context, code string) (*Category, error)
}
