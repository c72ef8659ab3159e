package owner

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("owner not found")

// Owner is the citizen who filed a declaration. Accounts live in the
// authentication system; the core only reads contact data from them.
type Owner struct {
	OwnerID  string `gorm:"column:owner_id;type:char(32);primaryKey" json:"owner_id"`
	Username string `gorm:"column:username;size:150" json:"username"`
	FullName string `gorm:"column:full_name;size:200" json:"full_name"`
	Email    string `gorm:"column:email;size:254" json:"email"`
	Phone    string `gorm:"column:phone;size:15" json:"phone"`
}

func (Owner) TableName() string { return "users" }

// Directory is the read-only lookup the notification dispatcher uses to
// resolve a recipient address.
type Directory interface {
	GetByOwnerID(ctx context.Context, ownerID string) (*Owner, error)
}
