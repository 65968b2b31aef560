package service

// QRCodeService renders product share codes.
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code linking to the product page.
	GenerateProductQR(productID string) ([]byte, error)

	// ParseProductQR extracts the product ID from the encoded share link.
	ParseProductQR(qrData string) (string, error)
}
