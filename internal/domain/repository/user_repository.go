// Package repository defines the persistence contracts the use cases depend on.
// Implementations live in internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no verified account matches.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores verified accounts. Rows only appear here after email verification.
type UserRepository interface {
	// FindByID loads the owner of an order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail looks up an account by its normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A duplicate email yields domainerrors.ErrEmailAlreadyRegistered.
	Create(ctx context.Context, user *entity.User) error
}
