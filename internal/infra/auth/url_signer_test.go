package auth

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLSigner_SignedURLRoundTrip(t *testing.T) {
	signer, err := NewURLSigner(newTokenTestConfig())
	require.NoError(t, err)

	link, err := signer.SignedURL("tok123", "alice@example.com")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "shop.example.com", u.Host)
	assert.Equal(t, "/auth/verify", u.Path)

	q := u.Query()
	assert.Equal(t, "tok123", q.Get(QueryToken))
	assert.Equal(t, "alice@example.com", q.Get(QueryEmail))
	assert.True(t, signer.Valid(q.Get(QueryToken), q.Get(QueryEmail), q.Get(QuerySignature)))
}

func TestURLSigner_RejectsTampering(t *testing.T) {
	signer, err := NewURLSigner(newTokenTestConfig())
	require.NoError(t, err)

	link, err := signer.SignedURL("tok123", "alice@example.com")
	require.NoError(t, err)
	u, err := url.Parse(link)
	require.NoError(t, err)
	sig := u.Query().Get(QuerySignature)

	assert.False(t, signer.Valid("tok999", "alice@example.com", sig))
	assert.False(t, signer.Valid("tok123", "mallory@example.com", sig))
	assert.False(t, signer.Valid("tok123", "alice@example.com", sig+"x"))
	assert.False(t, signer.Valid("tok123", "alice@example.com", ""))
}

func TestURLSigner_LinkExpires(t *testing.T) {
	s, err := NewURLSigner(newTokenTestConfig())
	require.NoError(t, err)
	signer := s.(*urlSigner)

	issued := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return issued }

	link, err := signer.SignedURL("tok123", "alice@example.com")
	require.NoError(t, err)
	u, err := url.Parse(link)
	require.NoError(t, err)
	sig := u.Query().Get(QuerySignature)

	signer.now = func() time.Time { return issued.Add(59 * time.Minute) }
	assert.True(t, signer.Valid("tok123", "alice@example.com", sig))

	signer.now = func() time.Time { return issued.Add(61 * time.Minute) }
	assert.False(t, signer.Valid("tok123", "alice@example.com", sig))
}

func TestNewURLSigner_RequiresConfig(t *testing.T) {
	cfg := newTokenTestConfig()
	cfg.SecretKey.URLSigning = ""
	_, err := NewURLSigner(cfg)
	assert.Error(t, err)

	cfg = newTokenTestConfig()
	cfg.Verification = nil
	_, err = NewURLSigner(cfg)
	assert.Error(t, err)
}
