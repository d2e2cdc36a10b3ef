package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel mirrors the 'members' table. The unique constraints on
// pseudo and lower(email) are the sole arbiter for concurrent
// registrations; the service never pre-checks before inserting.
type MemberModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Pseudo       string    `gorm:"type:varchar(50);not null;unique"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_members_email_ci,expression:lower(email)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
