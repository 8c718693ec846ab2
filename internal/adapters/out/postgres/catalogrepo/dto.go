// Package catalogrepo maps the product catalog tables. Products and
// categories are maintained outside this service; orders only reference
// them and read them for display.
package catalogrepo

import (
	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;uniqueIndex"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// ProductDTO is a catalog product. Path is the file name of the product
// image, relative to the product file base URL.
type ProductDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Path       string          `gorm:"not null"`
	CategoryID *int64          `gorm:"index"`
	Category   *CategoryDTO    `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (ProductDTO) TableName() string {
	return "products"
}
