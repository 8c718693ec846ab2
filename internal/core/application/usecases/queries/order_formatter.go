package queries

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRow is one row of the orders/items/products/categories join.
// Item and catalog columns are NULL for an order without items.
type OrderRow struct {
	OrderID     int64
	Status      string
	Description string
	CreatedAt   time.Time

	UserID    int64
	UserName  string
	UserEmail string

	ItemID       sql.NullInt64
	Quantity     sql.NullInt64
	ProductName  sql.NullString
	ProductPrice decimal.NullDecimal
	ProductPath  sql.NullString
	CategoryName sql.NullString
}

// FormatOrders folds join rows into one response per order. Rows of the same
// order must be adjacent; orders and their products keep row order.
// The product url is fileBaseURL followed by the product path.
func FormatOrders(rows []OrderRow, fileBaseURL string) []ListUserOrdersQueryResponse {
	orders := make([]ListUserOrdersQueryResponse, 0)

	for _, row := range rows {
		if len(orders) == 0 || orders[len(orders)-1].ID != row.OrderID {
			orders = append(orders, ListUserOrdersQueryResponse{
				ID: row.OrderID,
				User: OrderOwnerResponse{
					ID:    row.UserID,
					Name:  row.UserName,
					Email: row.UserEmail,
				},
				Products:    make([]OrderProductResponse, 0),
				Status:      row.Status,
				Description: row.Description,
				CreatedAt:   row.CreatedAt,
			})
		}

		if !row.ItemID.Valid {
			continue
		}

		current := &orders[len(orders)-1]
		current.Products = append(current.Products, OrderProductResponse{
			Quantity: int(row.Quantity.Int64),
			Name:     row.ProductName.String,
			Price:    row.ProductPrice.Decimal,
			Category: row.CategoryName.String,
			URL:      productURL(fileBaseURL, row.ProductPath),
		})
	}

	return orders
}

func productURL(base string, path sql.NullString) string {
	if !path.Valid {
		return ""
	}
	return base + path.String
}
