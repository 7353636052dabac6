package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the access tokens handed out after verification.
type TokenService interface {
	// GenerateAccessToken signs a token for the user and returns it with its expiry.
	GenerateAccessToken(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)

	// ValidateAccessToken parses and verifies a token string.
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// VerificationLinkSigner produces and checks tamper-proof verification URLs.
// The link signature has its own expiry, independent of the stored token expiry.
type VerificationLinkSigner interface {
	// SignedURL builds the verification URL embedding token and email.
	SignedURL(token, email string) (string, error)

	// Valid reports whether signature was issued for (token, email) and has not expired.
	Valid(token, email, signature string) bool
}
