package usecase

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput holds the writable category fields.
type CategoryInput struct {
	Name  string
	Icon  string
	Color string
}

// CategoryUsecase defines category CRUD.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
