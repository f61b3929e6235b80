package qrcode

import (
	"testing"

	"eshop/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
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
			svc := newQRCodeService(256, tt.level, "https://shop.example")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultStorefrontURL, svc.storefrontURL)
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := newQRCodeService(128, "M", "https://shop.example/")

	pngBytes, err := svc.GenerateProductQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(pngBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_ProductURLRoundTrip(t *testing.T) {
	svc := newQRCodeService(128, "M", "https://shop.example/")
	productID := uuid.New()

	productURL := svc.ProductURL(productID)
	assert.Equal(t, "https://shop.example/products/"+productID.String(), productURL)

	parsed, err := svc.ParseProductQR(productURL)
	require.NoError(t, err)
	assert.Equal(t, productID, parsed)
}

func TestQRCodeService_ParseProductQR_Invalid(t *testing.T) {
	svc := newQRCodeService(128, "M", "")

	for _, data := range []string{
		"https://shop.example/categories/" + uuid.NewString(),
		"https://shop.example/products/not-a-uuid",
		"://bad",
	} {
		_, err := svc.ParseProductQR(data)
		assert.Error(t, err, data)
	}
}
