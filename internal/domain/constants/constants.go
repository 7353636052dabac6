// Package constants holds string identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment webhook event types routed by the order materializer.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventPaymentIntentSucceeded   = "payment_intent.succeeded"
)

// Checkout session payment statuses. Only a paid session completes into an order
// from the webhook; a fully discounted one settles with no_payment_required and a zero total.
const (
	CheckoutPaymentStatusPaid              = "paid"
	CheckoutPaymentStatusNoPaymentRequired = "no_payment_required"
)

// Checkout session metadata keys written by the storefront when it opens a session.
const (
	MetadataUserID            = "user_id"
	MetadataCartID            = "cart_id"
	MetadataGuestSessionID    = "guest_session_id"
	MetadataGuestEmail        = "guest_email"
	MetadataShippingAddress   = "shipping_address"
	MetadataOrderNotes        = "order_notes"
	MetadataCheckoutSessionID = "checkout_session_id"
)

// Mail templates understood by the mail worker.
const (
	MailTemplateVerifyEmail       = "verify_email"
	MailTemplateWelcome           = "welcome"
	MailTemplateOrderConfirmation = "order_confirmation"
)

// Setting keys read through the setting service.
const (
	SettingStoreName       = "store.name"
	SettingDefaultCurrency = "store.default_currency"
)
