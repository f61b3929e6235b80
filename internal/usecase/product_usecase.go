package usecase

import (
	"context"
	"io"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput holds the writable product fields.
type ProductInput struct {
	Name            string
	Description     string
	RichDescription string
	Image           string // kept as-is on update; replaced by the upload on create
	Brand           string
	Price           decimal.Decimal
	CategoryID      uuid.UUID
	CountInStock    int
	Rating          float64
	NumReviews      int
	IsFeatured      bool
}

// ImageUpload is one uploaded file. File must be rewindable so every upload
// can be type-checked before any is stored.
type ImageUpload struct {
	Name string
	File io.ReadSeeker
}

// ProductUsecase defines catalog operations.
type ProductUsecase interface {
	// ListProducts returns all products, or those in any of categoryIDs.
	ListProducts(ctx context.Context, categoryIDs []uuid.UUID) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct stores the image and then the product. baseURL prefixes
	// the stored image link.
	CreateProduct(ctx context.Context, input *ProductInput, image *ImageUpload, baseURL string) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// UpdateGallery replaces the product's gallery images.
	UpdateGallery(ctx context.Context, id uuid.UUID, images []*ImageUpload, baseURL string) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CountProducts(ctx context.Context) (int64, error)
	FeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error)

	// ProductQRCode renders a PNG linking to the product page.
	ProductQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
