package service

import (
	"context"
)

// PaymentEvent is a verified webhook event reduced to what order materialization consumes.
type PaymentEvent struct {
	ID            string
	Type          string
	Session       *CheckoutSession // set for checkout.session.* events
	PaymentIntent *PaymentIntent   // set for payment_intent.* events
}

// CheckoutSession mirrors the provider's checkout session payload.
// Amounts are integer minor units.
type CheckoutSession struct {
	ID              string
	PaymentStatus   string
	AmountTotal     int64
	Currency        string
	CustomerEmail   string
	CustomerDetails *CustomerDetails
	TotalDetails    TotalDetails
	Metadata        map[string]string
	PaymentIntentID string
}

// CustomerDetails is the buyer information collected by the hosted checkout.
type CustomerDetails struct {
	Email   string
	Phone   string
	Name    string
	Address *PostalAddress
}

// PostalAddress is a structured provider address.
type PostalAddress struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// TotalDetails breaks down provider-computed amounts in minor units.
type TotalDetails struct {
	AmountTax      int64
	AmountShipping int64
}

// PaymentIntent mirrors the provider's payment intent payload.
type PaymentIntent struct {
	ID       string
	Status   string
	Metadata map[string]string
}

// PaymentGateway is the payment provider client used by the order materializer.
type PaymentGateway interface {
	// ConstructEvent verifies the webhook signature header and decodes the payload.
	ConstructEvent(payload []byte, signatureHeader string) (*PaymentEvent, error)

	// RetrieveCheckoutSession fetches a checkout session by id from the provider.
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
