package postgres

import (
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
