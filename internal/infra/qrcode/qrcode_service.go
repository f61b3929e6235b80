package qrcode

import (
	"net/url"
	"path"
	"strings"

	"eshop/config"
	"eshop/internal/domain/service"
	"eshop/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize          = 256
	defaultStorefrontURL = "http://localhost:3000"
	productPathSegment   = "products"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	storefrontURL        string
}

// NewQRCodeService builds the service from the qrcode config section, using
// defaults when it is absent.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M", defaultStorefrontURL)
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.StorefrontURL)
}

func newQRCodeService(size int, errorCorrectionLevel, storefrontURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
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
	if storefrontURL == "" {
		storefrontURL = defaultStorefrontURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		storefrontURL:        strings.TrimRight(storefrontURL, "/"),
	}
}

// ProductURL is the storefront page the QR code points at.
func (s *qrcodeService) ProductURL(productID uuid.UUID) string {
	return s.storefrontURL + "/" + productPathSegment + "/" + productID.String()
}

// GenerateProductQR renders the product page URL as a PNG.
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR extracts the product id from a scanned product page URL.
func (s *qrcodeService) ParseProductQR(qrData string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code URL")
	}

	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if path.Base(dir) != productPathSegment {
		return uuid.Nil, errors.Errorf("not a product URL: %s", qrData)
	}

	productID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse product ID")
	}

	return productID, nil
}
