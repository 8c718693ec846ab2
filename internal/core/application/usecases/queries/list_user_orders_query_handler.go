package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

const listUserOrdersSQL = `
	SELECT
		o.id,
		o.status,
		o.description,
		o.created_at,
		u.id,
		u.name,
		u.email,
		oi.id,
		oi.quantity,
		p.name,
		p.price,
		p.path,
		c.name
	FROM orders o
	JOIN users u ON u.id = o.user_id
	LEFT JOIN order_items oi ON oi.order_id = o.id
	LEFT JOIN products p ON p.id = oi.product_id
	LEFT JOIN categories c ON c.id = p.category_id
	WHERE o.user_id = ?
	ORDER BY o.id, oi.id
`

// ListUserOrdersQueryHandler reads the caller's orders with one join and
// folds the rows with FormatOrders.
type ListUserOrdersQueryHandler struct {
	db          *gorm.DB
	fileBaseURL string
}

// NewListUserOrdersQueryHandler creates the handler. fileBaseURL prefixes
// every product path in the response.
func NewListUserOrdersQueryHandler(db *gorm.DB, fileBaseURL string) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db, fileBaseURL: fileBaseURL}
}

// Handle returns an empty slice when the caller has no orders.
// Read failures are returned as *errs.StorageError.
func (h ListUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListUserOrdersQuery,
) ([]ListUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(listUserOrdersSQL, query.CallerID().Int64()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list user orders", err)
	}
	defer rows.Close()

	joined := make([]OrderRow, 0)
	for rows.Next() {
		var row OrderRow
		err = rows.Scan(
			&row.OrderID,
			&row.Status,
			&row.Description,
			&row.CreatedAt,
			&row.UserID,
			&row.UserName,
			&row.UserEmail,
			&row.ItemID,
			&row.Quantity,
			&row.ProductName,
			&row.ProductPrice,
			&row.ProductPath,
			&row.CategoryName,
		)
		if err != nil {
			return nil, errs.NewStorageError("scan user orders", err)
		}
		joined = append(joined, row)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list user orders", err)
	}

	return FormatOrders(joined, h.fileBaseURL), nil
}
