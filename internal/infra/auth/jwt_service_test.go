package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:     "test_access_secret_key_very_long_for_testing",
			URLSigning: "test_url_signing_secret_key_very_long",
		},
		Auth: &config.AuthConfig{AccessTokenTTL: 15 * time.Minute},
		Verification: &config.VerificationConfig{
			LinkTTL: time.Hour,
			BaseURL: "https://shop.example.com/auth/verify",
		},
	}
	cfg.Env.ServiceName = "storefront-test"

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(newTokenTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := jwtService.GenerateAccessToken(userID, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := jwtService.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "storefront-test", claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTokenTestConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("invalid.token.here")
	assert.Error(t, err)

	other := newTokenTestConfig()
	other.SecretKey.Access = "a_completely_different_secret_value"
	otherService, err := NewJWTService(other)
	require.NoError(t, err)

	token, _, err := otherService.GenerateAccessToken(uuid.New(), "bob@example.com")
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNonAccessToken(t *testing.T) {
	cfg := newTokenTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"uid":  uuid.New().String(),
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
