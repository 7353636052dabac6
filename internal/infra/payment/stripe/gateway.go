// Package stripe adapts the Stripe API to the domain PaymentGateway.
package stripe

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/fx"
)

// GatewayParams defines the dependencies for the Stripe gateway
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Gateway verifies Stripe webhooks and retrieves checkout sessions
type Gateway struct {
	webhookSecret string
	options       webhook.ConstructEventOptions
	sessions      *session.Client
	logger        *slog.Logger
}

// NewGateway creates the Stripe payment gateway
func NewGateway(params GatewayParams) (service.PaymentGateway, error) {
	return newGateway(params.Config.Stripe, params.Logger, nil)
}

// newGateway builds the gateway; apiURL overrides the Stripe API base URL when non-nil.
func newGateway(cfg *config.StripeConfig, logger *slog.Logger, apiURL *string) (*Gateway, error) {
	if cfg == nil {
		return nil, errors.New("stripe configuration is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret is required")
	}

	backend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.RequestTimeout},
		LeveledLogger:     &leveledLogger{logger: logger},
		MaxNetworkRetries: stripego.Int64(1),
		URL:               apiURL,
	})

	return &Gateway{
		webhookSecret: cfg.WebhookSecret,
		options: webhook.ConstructEventOptions{
			Tolerance:                cfg.ToleranceWindow,
			IgnoreAPIVersionMismatch: true,
		},
		sessions: &session.Client{B: backend, Key: cfg.SecretKey},
		logger:   logger,
	}, nil
}

// ConstructEvent verifies the Stripe-Signature header and decodes the embedded object.
func (g *Gateway) ConstructEvent(payload []byte, signatureHeader string) (*service.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret, g.options)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrWebhookSignatureInvalid, err.Error())
	}

	result := &service.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return result, nil
	}

	switch event.Type {
	case stripego.EventTypeCheckoutSessionCompleted:
		var cs stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, errors.Wrap(domainerrors.ErrWebhookPayloadInvalid, err.Error())
		}
		result.Session = toCheckoutSession(&cs)
	case stripego.EventTypePaymentIntentSucceeded:
		var pi stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errors.Wrap(domainerrors.ErrWebhookPayloadInvalid, err.Error())
		}
		result.PaymentIntent = &service.PaymentIntent{
			ID:       pi.ID,
			Status:   string(pi.Status),
			Metadata: pi.Metadata,
		}
	}

	return result, nil
}

// RetrieveCheckoutSession fetches a session. Any provider failure maps to ErrPaymentProviderUnavailable.
func (g *Gateway) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx

	cs, err := g.sessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripego.Error
		if errors.As(err, &stripeErr) {
			return nil, errors.Wrap(domainerrors.ErrPaymentProviderUnavailable.WithDetails(string(stripeErr.Code)), stripeErr.Msg)
		}

		return nil, errors.Wrap(domainerrors.ErrPaymentProviderUnavailable, err.Error())
	}

	return toCheckoutSession(cs), nil
}

func toCheckoutSession(cs *stripego.CheckoutSession) *service.CheckoutSession {
	out := &service.CheckoutSession{
		ID:            cs.ID,
		PaymentStatus: string(cs.PaymentStatus),
		AmountTotal:   cs.AmountTotal,
		Currency:      string(cs.Currency),
		CustomerEmail: cs.CustomerEmail,
		Metadata:      cs.Metadata,
	}
	if cs.TotalDetails != nil {
		out.TotalDetails = service.TotalDetails{
			AmountTax:      cs.TotalDetails.AmountTax,
			AmountShipping: cs.TotalDetails.AmountShipping,
		}
	}
	if cs.PaymentIntent != nil {
		out.PaymentIntentID = cs.PaymentIntent.ID
	}
	if cd := cs.CustomerDetails; cd != nil {
		out.CustomerDetails = &service.CustomerDetails{
			Email: cd.Email,
			Phone: cd.Phone,
			Name:  cd.Name,
		}
		if cd.Address != nil {
			out.CustomerDetails.Address = &service.PostalAddress{
				Line1:      cd.Address.Line1,
				Line2:      cd.Address.Line2,
				City:       cd.Address.City,
				State:      cd.Address.State,
				PostalCode: cd.Address.PostalCode,
				Country:    cd.Address.Country,
			}
		}
	}

	return out
}
