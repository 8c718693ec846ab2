package http

import (
	"errors"
	"net/http"

	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errUnauthenticated = errs.NewNotAuthorizedError("authenticate")

// writeError maps application errors to HTTP responses. Anything that is not
// a validation, lookup or access failure is logged and answered with a
// generic 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var (
		validationErr *errs.ValidationError
		notFoundErr   *errs.ObjectNotFoundError
		existsErr     *errs.ObjectAlreadyExistsError
	)

	switch {
	case errors.As(err, &validationErr):
		return ctx.JSON(http.StatusBadRequest, servers.ValidationErrors{Error: validationErr.Messages()})
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, servers.Error{Error: notFoundErr.ParamName + " not found"})
	case errors.Is(err, errs.ErrNotAuthorized):
		return ctx.JSON(http.StatusUnauthorized, servers.Error{Error: errs.ErrNotAuthorized.Error()})
	case errors.As(err, &existsErr):
		return ctx.JSON(http.StatusConflict, servers.Error{Error: existsErr.ParamName + " already exists"})
	}

	s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
		"error", err,
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
	)

	return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: http.StatusText(http.StatusInternalServerError)})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.ValidationErrors{Error: []string{"invalid request body"}})
}
