package middleware

import (
	"log/slog"
	"net/http"

	"forum/internal/delivery/http/response"
	domainerrors "forum/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Domain
// errors keep their mapped status and message; everything else collapses
// into an opaque 500 so infrastructure details never reach clients.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Typed domain failures carry their own HTTP mapping.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.ErrorBody{
			Message: appErr.Message(),
			Code:    appErr.HTTPCode(),
		})

		return
	}

	// Echo's own errors (404 routes, binding failures, validator output).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = c.JSON(httpErr.Code, response.ErrorBody{
			Message: message,
			Code:    httpErr.Code,
		})

		return
	}

	// Anything else is an infrastructure fault: log it, answer generically.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, response.ErrorBody{
		Message: "Internal server error",
		Code:    http.StatusInternalServerError,
	})
}
