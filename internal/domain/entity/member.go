// Package entity contains the core business objects of the forum,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a forum account. Pseudo and Email are each unique
// across all members: Pseudo is compared verbatim (case-sensitive) while
// Email is compared case-insensitively, keeping its original casing at rest.
type Member struct {
	ID           uuid.UUID // Unique identifier, assigned by the store at creation.
	Pseudo       string    // Display identifier, also usable as a login identifier.
	Email        string    // Contact email, also usable as a login identifier.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	IsAdmin      bool      // Privilege flag embedded into issued tokens.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
