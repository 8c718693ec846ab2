// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the HTTP responses.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListUserOrdersQueryIsNotConstructed = errors.New(
		"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
	)
)

// ListUserOrdersQuery fetches the complete order history of one user.
// There is no pagination: every call returns every order the caller owns.
//
// Example:
//
//	query, err := NewListUserOrdersQuery(callerID)
//	orders, err := handler.Handle(ctx, query)
type ListUserOrdersQuery struct {
	callerID kernel.ID

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery returns an *errs.ValidationError for a non-positive
// caller id.
func NewListUserOrdersQuery(callerID kernel.ID) (ListUserOrdersQuery, error) {
	if err := callerID.Validate(); err != nil {
		return ListUserOrdersQuery{}, errs.NewValidationError(err)
	}

	return ListUserOrdersQuery{
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

func (q ListUserOrdersQuery) CallerID() kernel.ID {
	return q.callerID
}

// OrderOwnerResponse is the public part of the order's owner.
type OrderOwnerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderProductResponse is one order line annotated with catalog data.
type OrderProductResponse struct {
	Quantity int             `json:"quantity"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	URL      string          `json:"url"`
}

// ListUserOrdersQueryResponse is one order in the caller's history.
type ListUserOrdersQueryResponse struct {
	ID          int64                  `json:"id"`
	User        OrderOwnerResponse     `json:"user"`
	Products    []OrderProductResponse `json:"products"`
	Status      string                 `json:"status"`
	Description string                 `json:"description"`
	CreatedAt   time.Time              `json:"createdAt"`
}
