package auth

import (
	"errors"
	"net/url"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// Query parameters of a verification link.
const (
	QueryToken     = "token"
	QueryEmail     = "email"
	QuerySignature = "signature"
)

type verificationLinkClaims struct {
	Token string `json:"tok"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// urlSigner signs verification links with an HS256 JWT carried in the signature parameter.
type urlSigner struct {
	secret  []byte
	baseURL string
	ttl     time.Duration
	now     func() time.Time
}

// NewURLSigner is the constructor for the verification link signer.
func NewURLSigner(cfg *config.Config) (service.VerificationLinkSigner, error) {
	if cfg.SecretKey.URLSigning == "" {
		return nil, errors.New("url signing secret must be provided")
	}
	if cfg.Verification == nil || cfg.Verification.BaseURL == "" {
		return nil, errors.New("verification base url must be provided")
	}
	if _, err := url.Parse(cfg.Verification.BaseURL); err != nil {
		return nil, err
	}

	return &urlSigner{
		secret:  []byte(cfg.SecretKey.URLSigning),
		baseURL: cfg.Verification.BaseURL,
		ttl:     cfg.Verification.LinkTTL,
		now:     time.Now,
	}, nil
}

// SignedURL returns baseURL?email=...&signature=...&token=...
func (s *urlSigner) SignedURL(token, email string) (string, error) {
	now := s.now()
	claims := &verificationLinkClaims{
		Token: token,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signature, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	query := u.Query()
	query.Set(QueryToken, token)
	query.Set(QueryEmail, email)
	query.Set(QuerySignature, signature)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// Valid reports whether signature was issued for exactly this token and email and is unexpired.
func (s *urlSigner) Valid(token, email, signature string) bool {
	if signature == "" {
		return false
	}

	claims := &verificationLinkClaims{}
	parsed, err := jwt.ParseWithClaims(signature, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return false
	}

	return claims.Token == token && claims.Email == email
}
