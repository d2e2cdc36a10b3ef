// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"forum/config"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/service"
)

// defaultTokenLifetime applies when the configuration does not set one.
const defaultTokenLifetime = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte        // Process-wide symmetric signing secret.
	lifetime time.Duration // Validity window of issued tokens.
}

// NewJWTService is the constructor for jwtService. A missing signing
// secret is a startup-fatal condition: the constructor fails and the
// application never begins serving.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	lifetime := cfg.JWT.TokenLifetime
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Secret),
		lifetime: lifetime,
	}, nil
}

// Issue builds and signs the claim set for a member.
func (s *jwtService) Issue(memberID uuid.UUID, pseudo string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Pseudo:  pseudo,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a presented token. The library checks the
// signature before the claims, so a tampered token is rejected without
// its claim content ever being trusted; expiry is validated right after.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	return claims, nil
}
