package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
		"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
	)
)

// CountOrdersByStatusQuery counts every stored order grouped by status label.
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

// CountOrdersByStatusQueryResponse is the number of orders carrying Status.
type CountOrdersByStatusQueryResponse struct {
	Status string
	Count  int64
}
