// Package servers holds the HTTP contract of the service: the models,
// ServerInterface with its echo wiring, and the embedded openapi.yaml the
// request validator runs against. The Go code follows oapi-codegen's echo
// layout and is kept in step with openapi.yaml by hand.
package servers

import (
	"time"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// ListedProduct defines model for ListedProduct.
type ListedProduct struct {
	Category string `json:"category"`
	Name     string `json:"name"`

	// Price Decimal amount
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Url      string `json:"url"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Description string        `json:"description"`
	Products    []ProductLine `json:"products"`
}

// NewSession defines model for NewSession.
type NewSession struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser defines model for NewUser.
type NewUser struct {
	Admin    *bool  `json:"admin,omitempty"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt   time.Time   `json:"createdAt"`
	Description string      `json:"description"`
	Id          int64       `json:"id"`
	Products    []OrderItem `json:"products"`
	Status      string      `json:"status"`
	UserId      int64       `json:"user_id"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductId int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderListItem defines model for OrderListItem.
type OrderListItem struct {
	CreatedAt   time.Time       `json:"createdAt"`
	Description string          `json:"description"`
	Id          int64           `json:"id"`
	Products    []ListedProduct `json:"products"`
	Status      string          `json:"status"`
	User        OrderOwner      `json:"user"`
}

// OrderOwner defines model for OrderOwner.
type OrderOwner struct {
	Email string `json:"email"`
	Id    int64  `json:"id"`
	Name  string `json:"name"`
}

// ProductLine defines model for ProductLine.
type ProductLine struct {
	Id       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// Session defines model for Session.
type Session struct {
	Admin bool   `json:"admin"`
	Email string `json:"email"`
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

// User defines model for User.
type User struct {
	Admin bool   `json:"admin"`
	Email string `json:"email"`
	Id    int64  `json:"id"`
	Name  string `json:"name"`
}

// ValidationErrors defines model for ValidationErrors.
type ValidationErrors struct {
	Error []string `json:"error"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// CreateSessionJSONRequestBody defines body for CreateSession for application/json ContentType.
type CreateSessionJSONRequestBody = NewSession

// RegisterUserJSONRequestBody defines body for RegisterUser for application/json ContentType.
type RegisterUserJSONRequestBody = NewUser

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = StatusChange

// ReplaceOrderStatusJSONRequestBody defines body for ReplaceOrderStatus for application/json ContentType.
type ReplaceOrderStatusJSONRequestBody = StatusChange
