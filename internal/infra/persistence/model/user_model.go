package model

import (
	"time"

	"github.com/google/uuid"
)

// UserEmailUniqueIndex guards one account per email across concurrent verifications.
const UserEmailUniqueIndex = "users_email_unique"

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex:users_email_unique;not null"`
	PasswordHash    string    `gorm:"column:password;type:varchar(255);not null"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PendingVerificationModel mirrors the 'pending_verifications' table.
type PendingVerificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:pending_verifications_email_unique;not null"`
	PasswordHash   string    `gorm:"column:password;type:varchar(255);not null"`
	Token          string    `gorm:"column:verification_token;type:varchar(64);index;not null"`
	TokenExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PendingVerificationModel) TableName() string {
	return "pending_verifications"
}
