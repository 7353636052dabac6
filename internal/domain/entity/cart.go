package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart stages items before checkout. A cart belongs either to a user or to a
// guest session, never both.
type Cart struct {
	ID             uuid.UUID
	UserID         *uuid.UUID
	GuestSessionID string
	// ShippingCost is the size-based shipping computed when the cart was priced.
	// Invalid when the cart has no pre-computed shipping.
	ShippingCost decimal.NullDecimal
	Items        []*CartItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CartItem is a product line in a cart with the unit price captured at add time.
type CartItem struct {
	ID          uuid.UUID
	CartID      uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	SizeID      *uuid.UUID
	Quantity    int
	Price       decimal.Decimal
}

// IsEmpty reports whether the cart has no purchasable items.
func (c *Cart) IsEmpty() bool {
	for _, item := range c.Items {
		if item.Quantity > 0 {
			return false
		}
	}

	return true
}

// Subtotal sums price times quantity over the purchasable items, the same lines
// that become order items.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		if item.Quantity <= 0 {
			continue
		}
		sum = sum.Add(item.LineTotal())
	}

	return RoundMoney(sum)
}

// LineTotal is the unit price times quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
