package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusProcessing, false},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusProcessing))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusSucceeded))
	assert.True(t, PaymentStatusProcessing.CanTransitionTo(PaymentStatusFailed))
	assert.False(t, PaymentStatusProcessing.CanTransitionTo(PaymentStatusProcessing))
	assert.False(t, PaymentStatusSucceeded.CanTransitionTo(PaymentStatusCancelled))
	assert.False(t, PaymentStatusFailed.CanTransitionTo(PaymentStatusSucceeded))
	assert.False(t, PaymentStatusPending.CanTransitionTo(PaymentStatusPending))
}

func TestOrder_TransitionTo(t *testing.T) {
	order := &Order{OrderNumber: "ORD-1", Status: OrderStatusDelivered}

	err := order.TransitionTo(OrderStatusCancelled)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, OrderStatusDelivered, order.Status)

	order.Status = OrderStatusPending
	require.NoError(t, order.TransitionTo(OrderStatusProcessing))
	assert.Equal(t, OrderStatusProcessing, order.Status)
}

func TestOrder_TransitionPaymentTo(t *testing.T) {
	order := &Order{OrderNumber: "ORD-1", PaymentStatus: PaymentStatusPending}

	require.NoError(t, order.TransitionPaymentTo(PaymentStatusSucceeded))
	assert.Equal(t, PaymentStatusSucceeded, order.PaymentStatus)

	err := order.TransitionPaymentTo(PaymentStatusFailed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, PaymentStatusSucceeded, order.PaymentStatus)
}

func TestOrder_TotalsConsistent(t *testing.T) {
	order := &Order{
		Subtotal: decimal.RequireFromString("25.00"),
		Tax:      decimal.RequireFromString("2.50"),
		Shipping: decimal.RequireFromString("4.99"),
		Total:    decimal.RequireFromString("32.49"),
	}
	assert.True(t, order.TotalsConsistent())

	order.Total = decimal.RequireFromString("32.50")
	assert.False(t, order.TotalsConsistent())
}

func TestNewOrderItemFromCart(t *testing.T) {
	item := &CartItem{
		ProductName: "Linen Shirt",
		Quantity:    3,
		Price:       decimal.RequireFromString("19.99"),
	}

	orderItem := NewOrderItemFromCart(item)

	require.NotNil(t, orderItem.ProductID)
	assert.Equal(t, "Linen Shirt", orderItem.ProductName)
	assert.Equal(t, 3, orderItem.Quantity)
	assert.Equal(t, "59.97", orderItem.Total.StringFixed(2))
	assert.True(t, orderItem.TotalConsistent())
}

func TestCart_SubtotalAndEmpty(t *testing.T) {
	cart := &Cart{Items: []*CartItem{
		{Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{Quantity: 1, Price: decimal.RequireFromString("5.00")},
	}}

	assert.False(t, cart.IsEmpty())
	assert.Equal(t, "25.00", cart.Subtotal().StringFixed(2))

	assert.True(t, (&Cart{}).IsEmpty())
	assert.True(t, (&Cart{Items: []*CartItem{{Quantity: 0}}}).IsEmpty())
}

func TestCart_SubtotalSkipsNonPositiveQuantities(t *testing.T) {
	cart := &Cart{Items: []*CartItem{
		{Quantity: 1, Price: decimal.RequireFromString("10.00")},
		{Quantity: -2, Price: decimal.RequireFromString("10.00")},
		{Quantity: 0, Price: decimal.RequireFromString("99.00")},
	}}

	assert.False(t, cart.IsEmpty())
	assert.Equal(t, "10.00", cart.Subtotal().StringFixed(2))
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, "125.00", FromMinorUnits(12500).StringFixed(2))
	assert.Equal(t, "0.99", FromMinorUnits(99).StringFixed(2))
	assert.True(t, FromMinorUnits(0).IsZero())
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2026, 1, 14, 9, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^ORD-20260114-[A-Z0-9]{8}$`)

	first, err := GenerateOrderNumber(now)
	require.NoError(t, err)
	second, err := GenerateOrderNumber(now)
	require.NoError(t, err)

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}
