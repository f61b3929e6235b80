package repository

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepository persists orders. Reads expand the user summary and the
// line items with their products.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns every order, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Create stores the order row only. Line items are attached separately.
	Create(ctx context.Context, order *entity.Order) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// TotalSales sums totalPrice across all orders; zero when there are none.
	TotalSales(ctx context.Context) (decimal.Decimal, error)
}

// OrderItemRepository persists order line items.
type OrderItemRepository interface {
	// Create stores a detached line item. A dangling product reference
	// returns ErrProductNotFound.
	Create(ctx context.Context, item *entity.OrderItem) error

	// FindWithProduct loads the line item with its product and the product's
	// current price.
	FindWithProduct(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)

	// Attach binds the line items to the order, keeping their positions.
	Attach(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) error

	// DeleteByIDs removes the given line items.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}
