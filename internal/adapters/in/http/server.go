package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const statusUpdatedMessage = "status updated successfully"

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}

	ListUserOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]queries.ListUserOrdersQueryResponse, error)
	}

	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
	}

	CreateSessionHandler interface {
		Handle(ctx context.Context, cmd commands.CreateSessionCommand) (commands.CreateSessionResult, error)
	}

	// OrderMetrics receives business events after successful writes.
	OrderMetrics interface {
		OrderCreated()
		StatusUpdated(status string)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	ListUserOrders    ListUserOrdersHandler
	RegisterUser      RegisterUserHandler
	CreateSession     CreateSessionHandler
}

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	metrics  OrderMetrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, metrics OrderMetrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger,
	}
}

// CreateOrder handles POST /api/v1/orders - places an order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	callerID, ok := CallerID(ctx)
	if !ok {
		return s.writeError(ctx, errUnauthenticated)
	}

	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	lines := make([]commands.ProductLine, 0, len(body.Products))
	for _, p := range body.Products {
		lines = append(lines, commands.ProductLine{ProductID: p.Id, Quantity: p.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(callerID, body.Description, lines)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if s.metrics != nil {
		s.metrics.OrderCreated()
	}

	return ctx.JSON(http.StatusOK, toOrder(created))
}

// ListOrders handles GET /api/v1/orders - every order owned by the caller.
func (s *Server) ListOrders(ctx echo.Context) error {
	callerID, ok := CallerID(ctx)
	if !ok {
		return s.writeError(ctx, errUnauthenticated)
	}

	query, err := queries.NewListUserOrdersQuery(callerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.ListUserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.OrderListItem, len(orders))
	for i, o := range orders {
		response[i] = toOrderListItem(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId int64) error {
	return s.changeStatus(ctx, orderId)
}

// ReplaceOrderStatus handles PUT /api/v1/orders/{orderId}. It behaves exactly
// like the PATCH variant.
func (s *Server) ReplaceOrderStatus(ctx echo.Context, orderId int64) error {
	return s.changeStatus(ctx, orderId)
}

func (s *Server) changeStatus(ctx echo.Context, orderID int64) error {
	callerID, ok := CallerID(ctx)
	if !ok {
		return s.writeError(ctx, errUnauthenticated)
	}

	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(callerID, kernel.ID(orderID), body.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if s.metrics != nil {
		s.metrics.StatusUpdated(updated.Status().String())
	}

	return ctx.JSON(http.StatusOK, servers.StatusUpdate{
		Message: statusUpdatedMessage,
		Order:   toOrder(updated),
	})
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body servers.NewUser
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	admin := body.Admin != nil && *body.Admin

	cmd, err := commands.NewRegisterUserCommand(body.Name, body.Email, body.Password, admin)
	if err != nil {
		return s.writeError(ctx, err)
	}

	registered, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUser(registered))
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	var body servers.NewSession
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateSessionCommand(body.Email, body.Password)
	if err != nil {
		return s.writeError(ctx, err)
	}

	session, err := s.handlers.CreateSession.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Session{
		Id:    session.User.ID().Int64(),
		Name:  session.User.Name(),
		Email: session.User.Email(),
		Admin: session.User.IsAdmin(),
		Token: session.Token,
	})
}
