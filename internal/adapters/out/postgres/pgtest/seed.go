package pgtest

import (
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/userrepo"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedUser inserts a user row directly and returns its id.
func SeedUser(db *gorm.DB, name, email string, admin bool) (int64, error) {
	dto := userrepo.UserDTO{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$seeded",
		Admin:        admin,
	}
	if err := db.Create(&dto).Error; err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// SeedProduct inserts a category (reused by name) and a product in it.
func SeedProduct(db *gorm.DB, name, price, path, category string) (int64, error) {
	cat := catalogrepo.CategoryDTO{Name: category}
	if err := db.Where(catalogrepo.CategoryDTO{Name: category}).FirstOrCreate(&cat).Error; err != nil {
		return 0, err
	}

	product := catalogrepo.ProductDTO{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Path:       path,
		CategoryID: &cat.ID,
	}
	if err := db.Create(&product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}
