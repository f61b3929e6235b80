package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that link to storefront pages.
type QRCodeService interface {
	// GenerateProductQR returns a PNG encoding the product page URL.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ParseProductQR extracts the product id from an encoded product page URL.
	ParseProductQR(qrData string) (uuid.UUID, error)
}
