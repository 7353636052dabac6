// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to start a signup.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// VerifyInput carries a verification link. SignatureValid is computed by the
// delivery layer from the link signature before the usecase is invoked.
type VerifyInput struct {
	Token          string
	Email          string
	SignatureValid bool
}

// ConfirmFunc asks an operator to approve deleting expired records.
type ConfirmFunc func(expired int64) bool

// --- Output DTOs ---

// RegisterOutput describes the pending signup that was created.
type RegisterOutput struct {
	Email     string
	ExpiresAt time.Time
}

// VerifyOutput returns the promoted account and its first access token.
type VerifyOutput struct {
	User                 *entity.User
	AccessToken          string
	AccessTokenExpiresAt time.Time
}

// VerificationStatusOutput is the read-only view polled by the signup status page.
type VerificationStatusOutput struct {
	Status    entity.VerificationStatus
	ExpiresAt *time.Time
}

// RegistrationStats summarises the pending verification table.
type RegistrationStats struct {
	Pending int64
	Expired int64
}

// RegistrationUsecase manages provisional signups from creation to promotion.
type RegistrationUsecase interface {
	// Register validates and hashes the password, creates the pending record and sends the verification mail.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Create persists a pending record for an already hashed password.
	Create(ctx context.Context, name, email, passwordHash string) (*entity.PendingVerification, error)

	// Verify promotes the pending record matching (token, email) into a User.
	Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)

	// Resend regenerates an expired token and re-sends the verification mail.
	Resend(ctx context.Context, email string) error

	// CleanupExpired deletes expired records. Without force, confirm must approve the deletion.
	CleanupExpired(ctx context.Context, force bool, confirm ConfirmFunc) (int64, error)

	// CountExpired counts the records CleanupExpired would delete.
	CountExpired(ctx context.Context) (int64, error)

	// Stats returns table-wide counts.
	Stats(ctx context.Context) (*RegistrationStats, error)

	// Status reports the externally visible signup state for email.
	Status(ctx context.Context, email string) (*VerificationStatusOutput, error)
}
