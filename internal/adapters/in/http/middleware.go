package http

import (
	"errors"
	"net/http"
	"strings"

	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/ports"
	"hotelpos/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// PrincipalHeader carries the account id or email asserted by the upstream sign-in.
	PrincipalHeader = "X-Admin-User"

	actorContextKey = "hotelpos.actor"
	apiPrefix       = "/api/"
)

var errActorMissing = errors.New("request has no authenticated actor")

// apiOnly skips middleware for everything outside the versioned API, such as
// the health check and the Swagger UI.
func apiOnly(ctx echo.Context) bool {
	return !strings.HasPrefix(ctx.Request().URL.Path, apiPrefix)
}

// Authenticate resolves the PrincipalHeader into the acting account and
// stores it on the context. Unknown or inactive principals get a 401.
func Authenticate(identity ports.IdentityProvider) echo.MiddlewareFunc {
	return authenticate(identity, apiOnly)
}

func authenticate(identity ports.IdentityProvider, skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if skipper(ctx) {
				return next(ctx)
			}

			principal := strings.TrimSpace(ctx.Request().Header.Get(PrincipalHeader))
			if principal == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing "+PrincipalHeader+" header")
			}

			actor, err := identity.Resolve(ctx.Request().Context(), principal)
			if err != nil {
				if errors.Is(err, errs.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error()).SetInternal(err)
				}
				return err
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFrom(ctx echo.Context) (*staff.AdminUser, error) {
	actor, ok := ctx.Get(actorContextKey).(*staff.AdminUser)
	if !ok || actor == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errActorMissing.Error()).SetInternal(errActorMissing)
	}
	return actor, nil
}

// ValidateRequests checks every API request against the OpenAPI document
// before it reaches a handler. Requests for routes the document does not
// describe pass through so echo can answer them.
func ValidateRequests(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Host matching would reject every request not sent to a listed server.
	swagger.Servers = nil

	router, err := legacyrouter.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	return validateRequests(router, apiOnly), nil
}

func validateRequests(router routers.Router, skipper middleware.Skipper) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if skipper(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err)).SetInternal(err)
			}

			return next(ctx)
		}
	}
}

// validationMessage keeps the first line of a kin-openapi error, which names
// the parameter or body field without echoing the schema.
func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		message := requestErr.Error()
		if i := strings.IndexByte(message, '\n'); i >= 0 {
			message = message[:i]
		}
		return message
	}
	return err.Error()
}
