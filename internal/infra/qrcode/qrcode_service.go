package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	lookupBaseURL        string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultQRSize
	levelName := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	baseURL := ""
	if cfg.Store != nil {
		baseURL = strings.TrimRight(cfg.Store.OrderLookupBaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(levelName),
		lookupBaseURL:        baseURL,
	}
}

func parseRecoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// OrderLookupURL returns <base>/<orderNumber>?email=<email>
func (s *qrcodeService) OrderLookupURL(orderNumber, email string) string {
	return s.lookupBaseURL + "/" + url.PathEscape(orderNumber) + "?" + url.Values{"email": {email}}.Encode()
}

// GenerateOrderLookupQR renders the order lookup URL as a PNG
func (s *qrcodeService) GenerateOrderLookupQR(orderNumber, email string) ([]byte, error) {
	qrCode, err := qrcode.New(s.OrderLookupURL(orderNumber, email), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
