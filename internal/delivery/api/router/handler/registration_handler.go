package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	LinkSigner     service.VerificationLinkSigner
	Logger         *slog.Logger
}

// RegistrationHandler serves the signup and email verification endpoints.
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	linkSigner     service.VerificationLinkSigner
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		linkSigner:     params.LinkSigner,
		logger:         params.Logger,
	}
}

// RegisterRequest represents the request body for signing up
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// VerifyRequest carries the query parameters of a verification link
type VerifyRequest struct {
	Token     string `query:"token" validate:"required"`
	Email     string `query:"email" validate:"required,email"`
	Signature string `query:"signature"`
}

// ResendRequest represents the request body for re-sending a verification email
type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerificationStatusRequest carries the email being polled
type VerificationStatusRequest struct {
	Email string `query:"email" validate:"required,email"`
}

// RegisterResponse describes the pending signup
type RegisterResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public view of a verified account
type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

// VerifyResponse returns the promoted account and its access token
type VerifyResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// VerificationStatusResponse is the payload of the status endpoint
type VerificationStatusResponse struct {
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Register creates a pending signup and sends the verification email
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.registrationUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		Email:     output.Email,
		ExpiresAt: output.ExpiresAt,
	}, "Verification email sent")
}

// Verify consumes a verification link and returns the new account
func (h *RegistrationHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification link")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	signatureValid := h.linkSigner.Valid(req.Token, req.Email, req.Signature)
	if !signatureValid {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Verification link signature rejected",
			slog.String("email", req.Email),
		)
	}

	output, err := h.registrationUC.Verify(ctx, &usecase.VerifyInput{
		Token:          req.Token,
		Email:          req.Email,
		SignatureValid: signatureValid,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VerifyResponse{
		User: UserResponse{
			ID:              output.User.ID,
			Name:            output.User.Name,
			Email:           output.User.Email,
			EmailVerifiedAt: output.User.EmailVerifiedAt,
			CreatedAt:       output.User.CreatedAt,
		},
		AccessToken: output.AccessToken,
		ExpiresAt:   output.AccessTokenExpiresAt,
	}, "Email verified")
}

// Resend re-sends the verification email, regenerating the token when it expired
func (h *RegistrationHandler) Resend(c echo.Context) error {
	var req ResendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.registrationUC.Resend(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Verification email re-sent")
}

// Status reports whether a signup is pending, expired or verified
func (h *RegistrationHandler) Status(c echo.Context) error {
	var req VerificationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status query")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.registrationUC.Status(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VerificationStatusResponse{
		Status:    string(output.Status),
		ExpiresAt: output.ExpiresAt,
	}, "")
}
