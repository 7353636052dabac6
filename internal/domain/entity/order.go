package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo allows forward moves along pending→processing→shipped→delivered
// and cancellation from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	from, okFrom := orderStatusRank[s]
	to, okTo := orderStatusRank[next]

	return okFrom && okTo && to > from
}

// PaymentStatus is the settlement state reported by the payment provider.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

// IsTerminal reports whether the payment has settled one way or another.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSucceeded || s == PaymentStatusFailed || s == PaymentStatusCancelled
}

// CanTransitionTo allows pending→processing and any non-terminal state to a terminal one.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s.IsTerminal() {
		return false
	}

	switch next {
	case PaymentStatusProcessing:
		return s == PaymentStatusPending
	case PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

// ErrInvalidTransition is returned when a status change violates the state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

// Order is the authoritative sale record.
type Order struct {
	ID                      uuid.UUID
	OrderNumber             string
	UserID                  *uuid.UUID // nil for guest orders
	GuestEmail              string
	GuestPhone              string
	GuestSessionID          string
	BillingAddressID        uuid.UUID
	ShippingAddressID       uuid.UUID
	Status                  OrderStatus
	PaymentStatus           PaymentStatus
	Subtotal                decimal.Decimal
	Tax                     decimal.Decimal
	Shipping                decimal.Decimal
	Total                   decimal.Decimal
	Currency                string
	StripeCheckoutSessionID string
	StripePaymentIntentID   string
	Notes                   string
	ConfirmationEmailSent   bool
	ConfirmationEmailSentAt *time.Time
	Items                   []*OrderItem
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsGuest reports whether the order has no owning user.
func (o *Order) IsGuest() bool {
	return o.UserID == nil
}

// TotalsConsistent checks total against subtotal + tax + shipping within MoneyTolerance.
func (o *Order) TotalsConsistent() bool {
	return MoneyEqual(o.Total, o.Subtotal.Add(o.Tax).Add(o.Shipping))
}

// TransitionTo moves the order to next or returns ErrInvalidTransition.
func (o *Order) TransitionTo(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidTransition, "order %s: %s -> %s", o.OrderNumber, o.Status, next)
	}
	o.Status = next

	return nil
}

// TransitionPaymentTo moves the payment status to next or returns ErrInvalidTransition.
func (o *Order) TransitionPaymentTo(next PaymentStatus) error {
	if !o.PaymentStatus.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidTransition, "order %s payment: %s -> %s", o.OrderNumber, o.PaymentStatus, next)
	}
	o.PaymentStatus = next

	return nil
}

// OrderItem is an immutable snapshot of a purchased line.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   *uuid.UUID // kept nullable so the line survives product deletion
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
	CreatedAt   time.Time
}

// NewOrderItemFromCart snapshots a cart line.
func NewOrderItemFromCart(item *CartItem) *OrderItem {
	productID := item.ProductID

	return &OrderItem{
		ProductID:   &productID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		Price:       RoundMoney(item.Price),
		Total:       RoundMoney(item.LineTotal()),
	}
}

// TotalConsistent checks total against price times quantity within MoneyTolerance.
func (i *OrderItem) TotalConsistent() bool {
	return MoneyEqual(i.Total, i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))))
}
