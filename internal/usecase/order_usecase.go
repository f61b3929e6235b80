package usecase

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput is a new order as submitted by the client. It has no
// price or status: both are decided by the workflow.
type CreateOrderInput struct {
	Items            []entity.OrderLine
	ShippingAddress1 string
	ShippingAddress2 string
	City             string
	Zip              string
	Country          string
	Phone            string
	UserID           uuid.UUID
}

// OrderUsecase defines the order workflow.
type OrderUsecase interface {
	// CreateOrder stores the line items, derives totalPrice from current
	// product prices and stores the order, all in one transaction.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)

	// DeleteOrder removes the order and all of its line items.
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	TotalSales(ctx context.Context) (decimal.Decimal, error)
	CountOrders(ctx context.Context) (int64, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrderItem(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)
}
