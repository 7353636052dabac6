package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// OrderUsecase turns verified payment events into orders and serves order look-ups.
type OrderUsecase interface {
	// HandleEvent routes a verified webhook event. Unknown event types are ignored.
	HandleEvent(ctx context.Context, event *service.PaymentEvent) error

	// CreateOrderFromSession materializes the order for sessionID exactly once.
	// paymentIntent and session are optional; a missing session is fetched from the provider.
	CreateOrderFromSession(ctx context.Context, sessionID string, paymentIntent *service.PaymentIntent, session *service.CheckoutSession) (*entity.Order, error)

	// FindForGuest returns the order when email matches its contact address.
	FindForGuest(ctx context.Context, orderNumber, email string) (*entity.Order, error)

	// ListForUser returns the orders owned by userID, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
