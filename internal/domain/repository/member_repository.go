// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"forum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMemberNotFound is a domain-specific error returned when a member is not found.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines the standard operations for member persistence.
// The application layer depends on this interface, not the concrete implementation.
type MemberRepository interface {
	// FindByIdentifier retrieves the single member whose pseudo exactly
	// equals the given pseudo OR whose email equals the given email,
	// compared case-insensitively. The implementation owns the email case
	// normalization; callers pass the identifier as received. Uniqueness
	// constraints on both columns guarantee at most one match. Returns
	// ErrMemberNotFound when neither predicate matches.
	FindByIdentifier(ctx context.Context, pseudo string, email string) (*entity.Member, error)

	// FindByID retrieves a single member by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// Create persists a new member. A pseudo or email collision surfaces
	// as domainerrors.ErrDuplicateAccount; the store's unique constraints
	// are the sole arbiter, there is no read-before-write pre-check.
	Create(ctx context.Context, member *entity.Member) error
}
