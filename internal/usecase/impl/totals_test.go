package impl

import (
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCart(shipping string) *entity.Cart {
	cart := &entity.Cart{
		Items: []*entity.CartItem{
			{ProductName: "Mug", Quantity: 3, Price: decimal.RequireFromString("3.33")},
			{ProductName: "Tea", Quantity: 1, Price: decimal.RequireFromString("10.01")},
		},
	}
	if shipping != "" {
		cart.ShippingCost = decimal.NewNullDecimal(decimal.RequireFromString(shipping))
	}

	return cart
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name             string
		cart             *entity.Cart
		session          *service.CheckoutSession
		wantSubtotal     string
		wantTax          string
		wantShipping     string
		wantTotal        string
		wantMismatch     bool
		// wantCartShipping is the reported cart quote, empty when it matched the charge.
		wantCartShipping string
		// wantCartSubtotal defaults to the testCart sum of 20.00.
		wantCartSubtotal string
	}{
		{
			name: "provider total is authoritative",
			cart: testCart(""),
			session: &service.CheckoutSession{
				AmountTotal:  2500,
				TotalDetails: service.TotalDetails{AmountTax: 150, AmountShipping: 350},
			},
			wantSubtotal: "20.00",
			wantTax:      "1.50",
			wantShipping: "3.50",
			wantTotal:    "25.00",
		},
		{
			name: "charged shipping wins over cart shipping",
			cart: testCart("4.00"),
			session: &service.CheckoutSession{
				AmountTotal:  2550,
				TotalDetails: service.TotalDetails{AmountTax: 150, AmountShipping: 350},
			},
			wantSubtotal:     "20.50",
			wantTax:          "1.50",
			wantShipping:     "3.50",
			wantTotal:        "25.50",
			wantMismatch:     true,
			wantCartShipping: "4.00",
		},
		{
			name: "cart shipping above the charge keeps subtotal positive",
			cart: &entity.Cart{
				Items:        []*entity.CartItem{{ProductName: "Mug", Quantity: 1, Price: decimal.RequireFromString("10.00")}},
				ShippingCost: decimal.NewNullDecimal(decimal.RequireFromString("40.00")),
			},
			session: &service.CheckoutSession{
				AmountTotal:  1500,
				TotalDetails: service.TotalDetails{AmountShipping: 500},
			},
			wantSubtotal:     "10.00",
			wantTax:          "0.00",
			wantShipping:     "5.00",
			wantTotal:        "15.00",
			wantCartShipping: "40.00",
			wantCartSubtotal: "10.00",
		},
		{
			name: "matching cart shipping is not reported",
			cart: testCart("3.50"),
			session: &service.CheckoutSession{
				AmountTotal:  2500,
				TotalDetails: service.TotalDetails{AmountTax: 150, AmountShipping: 350},
			},
			wantSubtotal: "20.00",
			wantTax:      "1.50",
			wantShipping: "3.50",
			wantTotal:    "25.00",
		},
		{
			name: "fully discounted checkout charges zero",
			cart: testCart("5.00"),
			session: &service.CheckoutSession{
				PaymentStatus: constants.CheckoutPaymentStatusNoPaymentRequired,
			},
			wantSubtotal:     "0.00",
			wantTax:          "0.00",
			wantShipping:     "0.00",
			wantTotal:        "0.00",
			wantMismatch:     true,
			wantCartShipping: "5.00",
		},
		{
			name:         "no provider total uses cart sum",
			cart:         testCart("5.00"),
			session:      &service.CheckoutSession{TotalDetails: service.TotalDetails{AmountTax: 100}},
			wantSubtotal: "20.00",
			wantTax:      "1.00",
			wantShipping: "5.00",
			wantTotal:    "26.00",
		},
		{
			name: "discounted charge flags mismatch",
			cart: testCart(""),
			session: &service.CheckoutSession{
				AmountTotal:  1800,
				TotalDetails: service.TotalDetails{AmountShipping: 300},
			},
			wantSubtotal: "15.00",
			wantTax:      "0.00",
			wantShipping: "3.00",
			wantTotal:    "18.00",
			wantMismatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeTotals(tt.cart, tt.session)

			assert.Equal(t, tt.wantSubtotal, got.Subtotal.StringFixed(2))
			assert.Equal(t, tt.wantTax, got.Tax.StringFixed(2))
			assert.Equal(t, tt.wantShipping, got.Shipping.StringFixed(2))
			assert.Equal(t, tt.wantTotal, got.Total.StringFixed(2))
			wantCartSubtotal := tt.wantCartSubtotal
			if wantCartSubtotal == "" {
				wantCartSubtotal = "20.00"
			}
			assert.Equal(t, wantCartSubtotal, got.CartSubtotal.StringFixed(2))
			assert.Equal(t, tt.wantMismatch, got.CartMismatch())
			assert.Equal(t, tt.wantCartShipping != "", got.ShippingMismatch())
			if tt.wantCartShipping != "" {
				assert.Equal(t, tt.wantCartShipping, got.CartShipping.Decimal.StringFixed(2))
			}
			assert.False(t, got.NegativeSubtotal())
			assert.True(t, entity.MoneyEqual(got.Total, got.Subtotal.Add(got.Tax).Add(got.Shipping)))
		})
	}
}

func TestComputeTotals_NegativeSubtotal(t *testing.T) {
	got := computeTotals(testCart(""), &service.CheckoutSession{
		AmountTotal:  500,
		TotalDetails: service.TotalDetails{AmountShipping: 800},
	})

	assert.True(t, got.NegativeSubtotal())
	assert.Equal(t, "-3.00", got.Subtotal.StringFixed(2))
}
