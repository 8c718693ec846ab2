package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle returns the counts sorted by status.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) ([]CountOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]CountOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageError("count orders by status", err)
	}
	defer rows.Close()

	for rows.Next() {
		var count CountOrdersByStatusQueryResponse
		if err = rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, errs.NewStorageError("scan order counts", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("count orders by status", err)
	}

	return counts, nil
}
