package repository

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository persists products. Reads expand the category.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	UpdateImages(ctx context.Context, id uuid.UUID, images []string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
