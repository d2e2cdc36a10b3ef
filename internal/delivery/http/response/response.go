package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the structured error returned to clients. The shape is
// part of the API contract: login failures always serialize to
// {"message":"Bad credential","code":422} regardless of their cause.
type ErrorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Error writes a structured error response.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Message: message,
		Code:    statusCode,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}
