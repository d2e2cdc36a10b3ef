// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"forum/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new member.
// The boundary layer validates format and length before it lands here.
type RegisterInput struct {
	Pseudo   string
	Email    string
	Password string
}

// LoginInput is the transient credential pair. Identifier may be a
// pseudo or an email; it is never persisted.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// TokenOutput returns the signed token together with the member it was
// issued for. Handlers send only the token over the wire.
type TokenOutput struct {
	Token  string
	Member *entity.Member
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Every operation is a single stateless transaction ending in a token or
// a typed failure.
type AuthUsecase interface {
	// Register creates an account and issues its first token.
	// A pseudo or email collision fails with ErrDuplicateAccount.
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)

	// Login verifies a credential and issues a token. An unknown
	// identifier and a wrong password fail identically with
	// ErrBadCredential.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Refresh issues a fresh token for an already-authenticated member
	// id (the boundary layer verified the presented token). A vanished
	// account fails with ErrAccountNotFound.
	Refresh(ctx context.Context, memberID uuid.UUID) (*TokenOutput, error)
}
