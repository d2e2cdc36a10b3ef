// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"forum/internal/delivery/http/middleware"
	"forum/internal/delivery/http/response"
	"forum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRequest represents the request body for creating an account.
type RegisterRequest struct {
	Pseudo   string `json:"pseudo" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the request body for logging in. The
// identifier may be a pseudo or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Register handles the account registration request. On success the
// response body is the signed token itself, so the client is logged in
// by the same call that created the account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Pseudo:   req.Pseudo,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output.Token)
}

// Login handles the credential verification request. The body is the
// bare token; all failure detail stays in the uniform error mapping.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output.Token)
}

// Refresh exchanges a still-valid token for a fresh one. The member id
// was extracted from the presented token by the auth middleware.
func (h *AuthHandler) Refresh(c echo.Context) error {
	memberID, ok := c.Get(middleware.ContextKeyMemberID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "Invalid member ID in token")
	}

	output, err := h.uc.Refresh(c.Request().Context(), memberID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output.Token)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
