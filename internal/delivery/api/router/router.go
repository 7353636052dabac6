// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	WebhookHandler      *handler.WebhookHandler
	OrderHandler        *handler.OrderHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	webhookHandler      *handler.WebhookHandler
	orderHandler        *handler.OrderHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		webhookHandler:      params.WebhookHandler,
		orderHandler:        params.OrderHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Signup and email verification routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.registrationHandler.Register)
		authGroup.GET("/verify", r.registrationHandler.Verify)
		authGroup.POST("/verification/resend", r.registrationHandler.Resend)
		authGroup.GET("/verification-status", r.registrationHandler.Status)
	}

	// Payment provider webhooks, authenticated by signature
	webhookGroup := e.Group("/webhooks")
	{
		webhookGroup.POST("/stripe", r.webhookHandler.HandleStripe)
	}

	// Guest order lookup, authorised by the order's contact email
	e.GET("/orders/:orderNumber", r.orderHandler.GetGuestOrder)

	// Account routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/orders", r.orderHandler.ListMyOrders)
	}
}
