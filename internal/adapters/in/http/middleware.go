package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const (
	bearerSchemeName = "bearerAuth"
	callerIDKey      = "ordering.caller_id"
)

var (
	errMissingBearerToken  = errors.New("missing bearer token")
	errUnsupportedSecurity = errors.New("unsupported security scheme")
)

// TokenParser resolves a bearer token to the id of the user it was issued for.
type TokenParser interface {
	Parse(token string) (kernel.ID, error)
}

type echoContextKey struct{}

// RequestValidator checks every request against the OpenAPI document before
// it reaches a handler. Bearer-secured operations are authenticated on the
// way and the resolved caller is stored on the echo context.
type RequestValidator struct {
	router routers.Router
	tokens TokenParser
}

func NewRequestValidator(swagger *openapi3.T, tokens TokenParser) (*RequestValidator, error) {
	// Routes are matched on path only.
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	return &RequestValidator{router: router, tokens: tokens}, nil
}

// Middleware lets requests for paths outside the document pass through
// untouched (health, metrics, swagger UI).
func (v *RequestValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := v.router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					MultiError:         true,
					AuthenticationFunc: v.authenticate,
				},
			}

			ctx := context.WithValue(req.Context(), echoContextKey{}, c)
			if err = openapi3filter.ValidateRequest(ctx, input); err != nil {
				return rejectRequest(c, err)
			}

			return next(c)
		}
	}
}

func (v *RequestValidator) authenticate(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	if input.SecuritySchemeName != bearerSchemeName {
		return errUnsupportedSecurity
	}

	header := input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return errMissingBearerToken
	}

	callerID, err := v.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return err
	}

	if c, ok := ctx.Value(echoContextKey{}).(echo.Context); ok {
		c.Set(callerIDKey, callerID)
	}

	return nil
}

// CallerID returns the authenticated caller stored by RequestValidator.
func CallerID(c echo.Context) (kernel.ID, bool) {
	id, ok := c.Get(callerIDKey).(kernel.ID)
	return id, ok
}

func rejectRequest(c echo.Context, err error) error {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		return c.JSON(http.StatusUnauthorized, servers.Error{Error: "authentication required"})
	}

	return c.JSON(http.StatusBadRequest, servers.ValidationErrors{Error: validationMessages(err)})
}

func validationMessages(err error) []string {
	switch e := err.(type) {
	case openapi3.MultiError:
		var messages []string
		for _, inner := range e {
			messages = append(messages, validationMessages(inner)...)
		}
		return messages
	case *openapi3filter.RequestError:
		if e.Err == nil {
			return []string{e.Error()}
		}
		messages := validationMessages(e.Err)
		if e.Parameter != nil {
			for i, m := range messages {
				messages[i] = "parameter " + e.Parameter.Name + ": " + m
			}
		}
		return messages
	case *openapi3.SchemaError:
		field := strings.Join(e.JSONPointer(), ".")
		if field == "" {
			return []string{e.Reason}
		}
		return []string{field + ": " + e.Reason}
	default:
		return []string{err.Error()}
	}
}
