// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"forum/internal/delivery/http/middleware"
	"forum/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		// Refresh requires a still-valid token; the middleware extracts
		// the member id from it.
		authGroup.POST("/refresh", r.authHandler.Refresh, r.authMiddleware.Authenticate)
	}

	// Admin routes that require authentication and the admin claim.
	// Moderation endpoints hang off this group as the forum grows.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check for the admin claim
	{
		adminGroup.GET("/health", handler.HealthCheck)
	}
}
