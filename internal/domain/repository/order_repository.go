package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when no order matches the lookup.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNumberTaken is returned by Create when the generated order number collides.
	ErrOrderNumberTaken = errors.New("order number already taken")
)

// OrderRepository persists orders and their items.
// The store enforces unique indexes on order_number and stripe_checkout_session_id.
type OrderRepository interface {
	// FindByCheckoutSessionID returns the order created for a checkout session, read from the primary.
	FindByCheckoutSessionID(ctx context.Context, sessionID string) (*entity.Order, error)

	// FindByOrderNumber returns an order with its items.
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListByUserID returns the user's orders, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Create inserts the order and all of its items.
	// A duplicate checkout session yields domainerrors.ErrOrderAlreadyExists and
	// a duplicate order number yields ErrOrderNumberTaken.
	Create(ctx context.Context, order *entity.Order) error

	// ClaimConfirmationEmail flips confirmation_email_sent from false to true.
	// It reports false when another caller already holds the claim.
	ClaimConfirmationEmail(ctx context.Context, orderID uuid.UUID, at time.Time) (bool, error)

	// ReleaseConfirmationEmail clears the flag so a later delivery can retry the send.
	ReleaseConfirmationEmail(ctx context.Context, orderID uuid.UUID) error
}
