package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPendingVerificationNotFound is returned when no pending record matches the lookup.
var ErrPendingVerificationNotFound = errors.New("pending verification not found")

// PendingVerificationRepository persists provisional signups.
// The store enforces a unique index on email.
type PendingVerificationRepository interface {
	// Create inserts a new pending record. A duplicate email yields domainerrors.ErrVerificationPending.
	Create(ctx context.Context, pending *entity.PendingVerification) error

	// FindByEmail returns the pending record for email, expired or not.
	FindByEmail(ctx context.Context, email string) (*entity.PendingVerification, error)

	// FindByTokenAndEmailForUpdate locks and returns the record matching both token and email.
	// It must be called inside a transaction.
	FindByTokenAndEmailForUpdate(ctx context.Context, token, email string) (*entity.PendingVerification, error)

	// Update saves the token and expiry of an existing record.
	Update(ctx context.Context, pending *entity.PendingVerification) error

	// Delete removes the record. It returns ErrPendingVerificationNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes every record whose expiry is at or before cutoff and returns the count.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)

	// CountExpired counts records whose expiry is at or before cutoff.
	CountExpired(ctx context.Context, cutoff time.Time) (int64, error)

	// Count returns the total number of pending records.
	Count(ctx context.Context) (int64, error)
}
