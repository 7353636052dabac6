// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a durable storefront account. Accounts are only ever created by
// promoting a PendingVerification, so EmailVerifiedAt is always set.
type User struct {
	ID              uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Name            string     // The user's display name.
	Email           string     // Unique login and contact email.
	PasswordHash    string     // bcrypt hash carried over from the pending record.
	EmailVerifiedAt *time.Time // When the email address was confirmed.
	CreatedAt       time.Time  // Timestamp of when this user account was created.
	UpdatedAt       time.Time  // Timestamp of the last modification to this user's data.
}

// NewVerifiedUser builds the account that replaces a pending verification.
func NewVerifiedUser(pending *PendingVerification, now time.Time) *User {
	verifiedAt := now

	return &User{
		Name:            pending.Name,
		Email:           pending.Email,
		PasswordHash:    pending.PasswordHash,
		EmailVerifiedAt: &verifiedAt,
	}
}

// IsVerified reports whether the user's email has been confirmed.
func (u *User) IsVerified() bool {
	return u.EmailVerifiedAt != nil
}
