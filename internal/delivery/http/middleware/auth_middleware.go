package middleware

import (
	"strings"

	"forum/internal/delivery/http/response"
	"forum/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyMemberID = "memberID"
	ContextKeyClaims   = "claims"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the presented bearer token and extracts the
// subject member id for handlers (e.g., refresh). The core never
// re-checks a password here; a valid signature and unexpired claims are
// the whole authentication.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		memberID, err := claims.MemberID()
		if err != nil {
			return response.Unauthorized(c, "Invalid member ID format in token")
		}

		// Set member info on the context for handlers to use
		c.Set(ContextKeyMemberID, memberID)
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireAdmin checks the isAdmin claim of the presented token.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(ContextKeyClaims).(*service.Claims)
		if !ok {
			return response.Forbidden(c, "Permission denied: claim information missing")
		}

		if !claims.IsAdmin {
			return response.Forbidden(c, "Permission denied: admin role required")
		}

		return next(c)
	}
}
