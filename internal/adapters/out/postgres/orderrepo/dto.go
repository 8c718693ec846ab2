// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order row and its item rows are always written and read together.
package orderrepo

import (
	"time"

	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/userrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderDTO represents the orders table. Items cascade with their order.
type OrderDTO struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	Status      string            `gorm:"not null"`
	Description string            `gorm:"not null"`
	UserID      int64             `gorm:"not null;index"`
	User        *userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time         `gorm:"autoCreateTime:false;not null"`
	Items       []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one product line of an order.
type OrderItemDTO struct {
	ID        int64                   `gorm:"primaryKey;autoIncrement"`
	OrderID   int64                   `gorm:"not null;index"`
	ProductID int64                   `gorm:"not null;index"`
	Product   *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity  int                     `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its rows. The order id stays
// zero for an unsaved order so the database generates it.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Int64(),
			ProductID: item.ProductID().Int64(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Int64(),
		Status:      aggregate.Status().String(),
		Description: aggregate.Description(),
		UserID:      aggregate.UserID().Int64(),
		CreatedAt:   aggregate.CreatedAt(),
		Items:       items,
	}
}

// toDomain rebuilds the aggregate, items in the order they were stored.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(kernel.ID(itemDTO.ProductID), itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.UserID),
		order.Status(dto.Status),
		dto.Description,
		items,
		dto.CreatedAt,
	)
}
