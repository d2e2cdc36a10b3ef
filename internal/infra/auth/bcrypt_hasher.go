// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"forum/config"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The work factor
// comes from configuration and falls back to bcrypt's default cost (10).
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil &&
		cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost builds a hasher with an explicit work factor.
// Lower costs keep test suites fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt embeds a fresh random salt, so repeated calls never collide.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		// Only catastrophic failures land here (entropy exhaustion,
		// oversized input); a caller cannot recover from them.
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash using the salt
// embedded in the hash. The comparison is constant time.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
