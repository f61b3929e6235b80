package postgres

import (
	"context"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a product with its category expanded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products, optionally restricted to a set of categories.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).Preload("Category")
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}

	if err := query.Order("date_created DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

// ListFeatured returns featured products, newest first. A limit of 0 means no limit.
func (repo *productRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).
		Preload("Category").
		Where("is_featured = ?", true).
		Order("date_created DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return toProductDomains(productModels), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).Create(fromProductDomain(product)).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product data")
		}
		if isOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price or stock out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update replaces the mutable product fields. An empty Image keeps the
// stored one; gallery images are managed by UpdateImages.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	fields := map[string]any{
		"name":             product.Name,
		"description":      product.Description,
		"rich_description": product.RichDescription,
		"brand":            product.Brand,
		"price":            product.Price,
		"category_id":      product.CategoryID,
		"count_in_stock":   product.CountInStock,
		"rating":           product.Rating,
		"num_reviews":      product.NumReviews,
		"is_featured":      product.IsFeatured,
	}
	if product.Image != "" {
		fields["image"] = product.Image
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(fields)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product data")
		}
		if isOutOfRange(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("price or stock out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) UpdateImages(ctx context.Context, id uuid.UUID, images []string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("images", pq.StringArray(images))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product images")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}
