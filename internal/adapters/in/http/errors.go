package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"hotelpos/internal/generated/servers"
	"hotelpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy onto HTTP status codes. The checks run in
// order, so a joined validation error that also wraps a missing object is a 404.
func statusFor(err error) int {
	var (
		notFound     *errs.ObjectNotFoundError
		transition   *errs.InvalidTransitionError
		unauthorized *errs.UnauthorizedError
		invalid      *errs.ValueIsInvalidError
		required     *errs.ValueIsRequiredError
		outOfRange   *errs.ValueIsOutOfRangeError
		httpErr      *echo.HTTPError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &transition):
		return http.StatusConflict
	case errors.As(err, &unauthorized):
		return http.StatusForbidden
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error returned by a handler or middleware as
// a servers.Error body. Internal failures are logged and hidden from clients.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := statusFor(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
			message = http.StatusText(code)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}
