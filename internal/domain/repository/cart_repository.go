package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when no cart matches the lookup.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository reads carts (with items and product names) and tears them down after checkout.
type CartRepository interface {
	// FindByID returns the cart and its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// FindByGuestSessionID returns the guest cart owned by sessionID.
	FindByGuestSessionID(ctx context.Context, sessionID string) (*entity.Cart, error)

	// Delete removes the cart items and then the cart.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrAddressNotFound is returned when no address matches the lookup.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository persists order addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
}
