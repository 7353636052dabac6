package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StripeSignatureHeader carries the webhook signature computed by Stripe.
const StripeSignatureHeader = "Stripe-Signature"

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Gateway service.PaymentGateway
	Logger  *slog.Logger
}

// WebhookHandler receives payment provider webhooks.
type WebhookHandler struct {
	orderUC usecase.OrderUsecase
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		orderUC: params.OrderUC,
		gateway: params.Gateway,
		logger:  params.Logger,
	}
}

// WebhookAck is returned for every event that passed signature verification
type WebhookAck struct {
	Received bool   `json:"received"`
	EventID  string `json:"event_id"`
}

// HandleStripe verifies and processes a Stripe webhook. Once the signature is
// verified the event is acknowledged with 200 and processing failures are only logged.
func (h *WebhookHandler) HandleStripe(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYLOAD", "Unable to read webhook body")
	}

	event, err := h.gateway.ConstructEvent(payload, c.Request().Header.Get(StripeSignatureHeader))
	if err != nil {
		logger.Warn("Rejected webhook", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	logger = logger.With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))

	// Processing outlives a provider that hangs up early.
	if err := h.orderUC.HandleEvent(context.WithoutCancel(ctx), event); err != nil {
		logger.Error("Webhook event processing failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, WebhookAck{Received: true, EventID: event.ID}, "Webhook received")
}
