// Package validator wires go-playground/validator into echo so request
// DTOs are validated at the boundary, before the use cases see them.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds echo's Validator backed by go-playground/validator.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as a 400 so the
// core never sees malformed input.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
