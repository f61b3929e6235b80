package postgres

import (
	"context"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository is the constructor for orderItemRepository.
func NewOrderItemRepository(db *gorm.DB) repository.OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (repo *orderItemRepository) Create(ctx context.Context, item *entity.OrderItem) error {
	if err := repo.db.WithContext(ctx).Create(fromOrderItemDomain(item)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
		}
		if isOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	return nil
}

// FindWithProduct loads the item and its product. A missing product yields
// ErrProductNotFound.
func (repo *orderItemRepository) FindWithProduct(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	var itemM model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product.Category").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find order item by id")
	}

	if itemM.Product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	return toOrderItemDomain(&itemM), nil
}

func (repo *orderItemRepository) Attach(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("id IN ?", itemIDs).
		Update("order_id", orderID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to attach order items")
	}
	if result.RowsAffected != int64(len(itemIDs)) {
		return domainerrors.ErrOrderItemNotFound
	}

	return nil
}

func (repo *orderItemRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order items")
	}

	return nil
}
