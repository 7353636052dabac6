package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// VerificationTokenLength is the number of random characters in a verification token.
	VerificationTokenLength = 64

	// DefaultVerificationTTL is how long a verification token stays valid.
	DefaultVerificationTTL = 24 * time.Hour
)

// VerificationStatus is the externally visible state of a signup, used by the status endpoint.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusExpired  VerificationStatus = "expired"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusUnknown  VerificationStatus = "unknown"
)

// PendingVerification is a provisional signup that has not been promoted into a User yet.
type PendingVerification struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHash   string
	Token          string
	TokenExpiresAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPendingVerification builds a pending record with a fresh token expiring ttl from now.
func NewPendingVerification(name, email, passwordHash string, now time.Time, ttl time.Duration) (*PendingVerification, error) {
	token, err := GenerateVerificationToken()
	if err != nil {
		return nil, err
	}

	return &PendingVerification{
		Name:           name,
		Email:          email,
		PasswordHash:   passwordHash,
		Token:          token,
		TokenExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired reports whether the token expiry is at or before now.
func (p *PendingVerification) IsExpired(now time.Time) bool {
	return !p.TokenExpiresAt.After(now)
}

// RegenerateToken replaces the token and pushes the expiry ttl past now.
func (p *PendingVerification) RegenerateToken(now time.Time, ttl time.Duration) error {
	token, err := GenerateVerificationToken()
	if err != nil {
		return err
	}

	p.Token = token
	p.TokenExpiresAt = now.Add(ttl)

	return nil
}

// Status maps the record onto the status endpoint vocabulary.
func (p *PendingVerification) Status(now time.Time) VerificationStatus {
	if p.IsExpired(now) {
		return VerificationStatusExpired
	}

	return VerificationStatusPending
}

// GenerateVerificationToken returns a crypto-random alphanumeric token.
func GenerateVerificationToken() (string, error) {
	return randomString(VerificationTokenLength, alphanumeric)
}
