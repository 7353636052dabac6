package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order look-ups for guests and signed-in customers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// GuestOrderRequest identifies an order by number and contact email
type GuestOrderRequest struct {
	OrderNumber string `param:"orderNumber" validate:"required"`
	Email       string `query:"email" validate:"required,email"`
}

// OrderItemResponse is one purchased line
type OrderItemResponse struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// OrderResponse is the customer-facing view of an order
type OrderResponse struct {
	OrderNumber   string              `json:"order_number"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	Subtotal      string              `json:"subtotal"`
	Tax           string              `json:"tax"`
	Shipping      string              `json:"shipping"`
	Total         string              `json:"total"`
	Currency      string              `json:"currency"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
}

func newOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price.StringFixed(2),
			Total:       item.Total.StringFixed(2),
		})
	}

	return OrderResponse{
		OrderNumber:   order.OrderNumber,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Subtotal:      order.Subtotal.StringFixed(2),
		Tax:           order.Tax.StringFixed(2),
		Shipping:      order.Shipping.StringFixed(2),
		Total:         order.Total.StringFixed(2),
		Currency:      order.Currency,
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}

// GetGuestOrder returns an order when the supplied email matches its contact address
func (h *OrderHandler) GetGuestOrder(c echo.Context) error {
	var req GuestOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order lookup")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.FindForGuest(c.Request().Context(), req.OrderNumber, req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "")
}

// ListMyOrders returns the authenticated user's orders, newest first
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		h.logger.Warn("Failed to list orders",
			slog.String("user_id", userID.String()),
			slog.String("email", deliverycontext.GetUserEmail(c)),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	views := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, views, "")
}
