package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"artisanconnect/config"
	"artisanconnect/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:5000/products"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateProductQR renders a PNG code pointing at <baseURL>/<productID>.
func (s *qrcodeService) GenerateProductQR(productID string) ([]byte, error) {
	if productID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	link := s.baseURL + "/" + url.PathEscape(productID)

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProductQR returns the product ID of a share link produced by GenerateProductQR.
func (s *qrcodeService) ParseProductQR(qrData string) (string, error) {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(qrData, prefix) {
		return "", fmt.Errorf("invalid product link: %s", qrData)
	}

	escaped := strings.TrimPrefix(qrData, prefix)
	if escaped == "" || strings.Contains(escaped, "/") {
		return "", fmt.Errorf("invalid product link: %s", qrData)
	}

	productID, err := url.PathUnescape(escaped)
	if err != nil {
		return "", fmt.Errorf("failed to parse product id: %w", err)
	}

	return productID, nil
}
