package db

import (
	"declatogo-backend/internal/domain/category"
	"declatogo-backend/internal/domain/declaration"
	"declatogo-backend/internal/domain/notification"

	"gorm.io/gorm"
)

// Migrate creates or updates the registry tables. The users table belongs
// to the auth service and is deliberately not migrated here.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&category.Category{},
		&declaration.Declaration{},
		&notification.Notification{},
	)
}
