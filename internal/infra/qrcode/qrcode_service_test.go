package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
		Store:  &config.StoreConfig{OrderLookupBaseURL: "https://shop.example.com/orders/"},
	}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_OrderLookupURL(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M"))

	got := service.OrderLookupURL("ORD-20260114-ABCDEFGH", "bob+shop@example.com")
	assert.Equal(t, "https://shop.example.com/orders/ORD-20260114-ABCDEFGH?email=bob%2Bshop%40example.com", got)
}

func TestQRCodeService_GenerateOrderLookupQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Default size", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newTestConfig(tt.size, "M"))

			qrBytes, err := service.GenerateOrderLookupQR("ORD-20260114-ABCDEFGH", "bob@example.com")
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// Verify it's a valid PNG (starts with PNG magic number)
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestNewQRCodeService_NilSections(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	assert.Equal(t, "/ORD-1?email=a%40b.c", service.OrderLookupURL("ORD-1", "a@b.c"))
	_, err := service.GenerateOrderLookupQR("ORD-1", "a@b.c")
	assert.NoError(t, err)
}
