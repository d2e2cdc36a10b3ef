package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the claim set embedded in every issued token. The subject
// carries the member id; iat/exp come from the registered claims.
type Claims struct {
	Pseudo  string `json:"pseudo"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// MemberID parses the subject claim back into the member's UUID.
func (c *Claims) MemberID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue builds a claim set for the member with issuedAt = now and
	// expiresAt = now + the configured lifetime, signs it with the
	// process-wide secret and returns the compact serialization.
	Issue(memberID uuid.UUID, pseudo string, isAdmin bool) (string, error)

	// Verify checks the signature first, then expiry, and returns the
	// decoded claims only if both pass.
	Verify(tokenString string) (*Claims, error)
}
