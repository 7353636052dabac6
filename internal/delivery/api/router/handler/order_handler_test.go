package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderHandlerFixture struct {
	e        *echo.Echo
	orderUC  *mockUsecase.MockOrderUsecase
	tokenSvc *mockSvc.MockTokenService
}

func createTestOrderHandler(t *testing.T) *orderHandlerFixture {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	h := handler.NewOrderHandler(handler.OrderHandlerParams{
		OrderUC: orderUC,
		Logger:  discardLogger(),
	})
	auth := middleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho()
	e.GET("/orders/:orderNumber", h.GetGuestOrder)
	e.GET("/account/orders", h.ListMyOrders, auth.Authenticate)

	return &orderHandlerFixture{e: e, orderUC: orderUC, tokenSvc: tokenSvc}
}

func sampleOrder(number string) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		OrderNumber:   number,
		Status:        entity.OrderStatusProcessing,
		PaymentStatus: entity.PaymentStatusSucceeded,
		Subtotal:      decimal.RequireFromString("25"),
		Tax:           decimal.RequireFromString("2"),
		Shipping:      decimal.RequireFromString("2.5"),
		Total:         decimal.RequireFromString("29.5"),
		Currency:      "USD",
		Items: []*entity.OrderItem{
			{ProductName: "Mug", Quantity: 2, Price: decimal.RequireFromString("10"), Total: decimal.RequireFromString("20")},
			{ProductName: "Coaster", Quantity: 1, Price: decimal.RequireFromString("5"), Total: decimal.RequireFromString("5")},
		},
		CreatedAt: time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestOrderHandler_GetGuestOrder(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().FindForGuest(mock.Anything, "ORD-20260114-ABCD1234", "grace@example.com").
		Return(sampleOrder("ORD-20260114-ABCD1234"), nil)

	rec, env := serve(t, fx.e, httptest.NewRequest(http.MethodGet,
		"/orders/ORD-20260114-ABCD1234?email=grace%40example.com", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[handler.OrderResponse](t, env)
	assert.Equal(t, "ORD-20260114-ABCD1234", view.OrderNumber)
	assert.Equal(t, "processing", view.Status)
	assert.Equal(t, "succeeded", view.PaymentStatus)
	assert.Equal(t, "25.00", view.Subtotal)
	assert.Equal(t, "2.50", view.Shipping)
	assert.Equal(t, "29.50", view.Total)
	require.Len(t, view.Items, 2)
	assert.Equal(t, handler.OrderItemResponse{ProductName: "Mug", Quantity: 2, Price: "10.00", Total: "20.00"}, view.Items[0])
}

func TestOrderHandler_GetGuestOrderErrors(t *testing.T) {
	t.Run("email mismatch reads as not found", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		fx.orderUC.EXPECT().FindForGuest(mock.Anything, "ORD-20260114-ABCD1234", "mallory@example.com").
			Return(nil, domainerrors.ErrOrderNotFound)

		rec, env := serve(t, fx.e, httptest.NewRequest(http.MethodGet,
			"/orders/ORD-20260114-ABCD1234?email=mallory%40example.com", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
	})

	t.Run("email required", func(t *testing.T) {
		fx := createTestOrderHandler(t)

		rec, env := serve(t, fx.e, httptest.NewRequest(http.MethodGet, "/orders/ORD-20260114-ABCD1234", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("store failure is a 500 without details", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		fx.orderUC.EXPECT().FindForGuest(mock.Anything, "ORD-20260114-ABCD1234", "grace@example.com").
			Return(nil, errors.New("connection reset"))

		rec, env := serve(t, fx.e, httptest.NewRequest(http.MethodGet,
			"/orders/ORD-20260114-ABCD1234?email=grace%40example.com", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestOrderHandler_ListMyOrders(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()

	fx.tokenSvc.EXPECT().ValidateAccessToken("good-token").
		Return(&service.Claims{UserID: userID, Email: "ada@example.com", Type: "access"}, nil)
	fx.orderUC.EXPECT().ListForUser(mock.Anything, userID).
		Return([]*entity.Order{sampleOrder("ORD-20260114-BBBB2222"), sampleOrder("ORD-20260113-AAAA1111")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/account/orders", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")

	rec, env := serve(t, fx.e, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	views := decodeData[[]handler.OrderResponse](t, env)
	require.Len(t, views, 2)
	assert.Equal(t, "ORD-20260114-BBBB2222", views[0].OrderNumber)
}

func TestOrderHandler_ListMyOrdersRequiresToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(fx *orderHandlerFixture)
		wantCode string
	}{
		{name: "missing header", header: "", wantCode: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic abc", wantCode: "INVALID_TOKEN"},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(fx *orderHandlerFixture) {
				fx.tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderHandler(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			req := httptest.NewRequest(http.MethodGet, "/account/orders", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec, env := serve(t, fx.e, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}
