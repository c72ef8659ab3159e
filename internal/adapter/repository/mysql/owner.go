package mysql

import (
	"context"

	ownerDomain "declatogo-backend/internal/domain/owner"

	"gorm.io/gorm"
)

// OwnerDirectory reads contact data from the auth system's users table.
// Strictly read-only; account management belongs to the auth service.
type OwnerDirectory struct{ db *gorm.DB }

func NewOwnerDirectory(db *gorm.DB) *OwnerDirectory { return &OwnerDirectory{db: db} }

func (r *OwnerDirectory) GetByOwnerID(ctx context.Context, ownerID string) (*ownerDomain.Owner, error) {
	var out ownerDomain.Owner
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&out)
	return &out, res.Error
}
