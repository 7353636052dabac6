package impl

import (
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
)

// orderTotals are the amounts persisted on an order, all rounded to cents.
type orderTotals struct {
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Shipping     decimal.Decimal
	Total        decimal.Decimal
	CartSubtotal decimal.Decimal
	// CartShipping is set when the cart quoted shipping that differs from what was charged.
	CartShipping decimal.NullDecimal
}

// CartMismatch reports whether the derived subtotal disagrees with the cart by a cent or more.
func (t orderTotals) CartMismatch() bool {
	return !entity.MoneyEqual(t.Subtotal, t.CartSubtotal)
}

// ShippingMismatch reports whether the cart's shipping quote was replaced by the charged shipping.
func (t orderTotals) ShippingMismatch() bool {
	return t.CartShipping.Valid
}

// NegativeSubtotal reports provider amounts where tax and shipping exceed the charged total.
func (t orderTotals) NegativeSubtotal() bool {
	return t.Subtotal.IsNegative()
}

// providerTotalKnown tells a zero total apart from an absent one: zero is only
// charged when the session needed no payment.
func providerTotalKnown(session *service.CheckoutSession) bool {
	return session.AmountTotal > 0 || session.PaymentStatus == constants.CheckoutPaymentStatusNoPaymentRequired
}

// computeTotals uses the provider's charged total as the source of truth and derives
// the subtotal from it, so subtotal + tax + shipping always equals what was charged.
// The derivation uses the charged shipping; a differing cart quote is only reported.
// Without a provider total the cart sum and cart shipping are used instead.
func computeTotals(cart *entity.Cart, session *service.CheckoutSession) orderTotals {
	cartSubtotal := cart.Subtotal()
	tax := entity.FromMinorUnits(session.TotalDetails.AmountTax)
	chargedShipping := entity.FromMinorUnits(session.TotalDetails.AmountShipping)

	if !providerTotalKnown(session) {
		shipping := chargedShipping
		if cart.ShippingCost.Valid {
			shipping = entity.RoundMoney(cart.ShippingCost.Decimal)
		}

		return orderTotals{
			Subtotal:     cartSubtotal,
			Tax:          tax,
			Shipping:     shipping,
			Total:        entity.RoundMoney(cartSubtotal.Add(tax).Add(shipping)),
			CartSubtotal: cartSubtotal,
		}
	}

	total := entity.FromMinorUnits(session.AmountTotal)
	totals := orderTotals{
		Subtotal:     entity.RoundMoney(total.Sub(tax).Sub(chargedShipping)),
		Tax:          tax,
		Shipping:     chargedShipping,
		Total:        total,
		CartSubtotal: cartSubtotal,
	}
	if cart.ShippingCost.Valid {
		if quoted := entity.RoundMoney(cart.ShippingCost.Decimal); !entity.MoneyEqual(quoted, chargedShipping) {
			totals.CartShipping = decimal.NewNullDecimal(quoted)
		}
	}

	return totals
}
