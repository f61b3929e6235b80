package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/domain/service"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
	now           func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	OrderItemRepo repository.OrderItemRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		orderItemRepo: params.OrderItemRepo,
		publisher:     params.Publisher,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder runs the whole order creation in one transaction:
// line items first, then the price lookups, then the order row, then the
// attachment of the items. Any failure rolls everything back.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateCreateOrderInput(input); err != nil {
		return nil, err
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		itemRepo := repoFactory.NewOrderItemRepository()
		orderRepo := repoFactory.NewOrderRepository()

		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to load order user")
		}

		itemIDs, err := createLineItems(ctx, itemRepo, input.Items)
		if err != nil {
			return err
		}

		totalPrice, err := sumLineItems(ctx, itemRepo, itemIDs)
		if err != nil {
			return err
		}

		order := &entity.Order{
			ID:               uuid.New(),
			ShippingAddress1: input.ShippingAddress1,
			ShippingAddress2: input.ShippingAddress2,
			City:             input.City,
			Zip:              input.Zip,
			Country:          input.Country,
			Phone:            input.Phone,
			Status:           entity.OrderStatusPending,
			TotalPrice:       totalPrice,
			UserID:           input.UserID,
			DateOrdered:      srv.now().UTC(),
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := itemRepo.Attach(ctx, order.ID, itemIDs); err != nil {
			return errors.Wrap(err, "failed to attach order items")
		}

		created, err = orderRepo.FindByID(ctx, order.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed",
			slog.String("userId", input.UserID.String()),
			slog.Int("itemCount", len(input.Items)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderId", created.ID.String()),
		slog.String("totalPrice", created.TotalPrice.StringFixed(2)),
	)
	srv.publish(ctx, entity.OrderEventCreated, created)

	return created, nil
}

func validateCreateOrderInput(input *usecase.CreateOrderInput) error {
	if len(input.Items) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("orderItems must not be empty")
	}
	for _, line := range input.Items {
		if line.ProductID == uuid.Nil {
			return domainerrors.ErrValidationFailed.WithDetails("orderItems.product is required")
		}
		if line.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("orderItems.quantity must be positive")
		}
	}

	required := []struct{ field, value string }{
		{"shippingAddress1", input.ShippingAddress1},
		{"shippingAddress2", input.ShippingAddress2},
		{"city", input.City},
		{"zip", input.Zip},
		{"country", input.Country},
		{"phone", input.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domainerrors.ErrValidationFailed.WithDetails(r.field + " is required")
		}
	}

	if input.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("user is required")
	}

	return nil
}

// createLineItems stores one detached line item per requested line and
// returns their ids in request order.
func createLineItems(ctx context.Context, itemRepo repository.OrderItemRepository, lines []entity.OrderLine) ([]uuid.UUID, error) {
	itemIDs := make([]uuid.UUID, 0, len(lines))
	for position, line := range lines {
		item := &entity.OrderItem{
			ID:        uuid.New(),
			Position:  position,
			Quantity:  line.Quantity,
			ProductID: line.ProductID,
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			return nil, errors.Wrapf(err, "failed to create order item for product %s", line.ProductID)
		}
		itemIDs = append(itemIDs, item.ID)
	}

	return itemIDs, nil
}

// sumLineItems re-reads every line item with its product's current price and
// returns the sum of quantity x price.
func sumLineItems(ctx context.Context, itemRepo repository.OrderItemRepository, itemIDs []uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, id := range itemIDs {
		item, err := itemRepo.FindWithProduct(ctx, id)
		if err != nil {
			return decimal.Zero, errors.Wrapf(err, "failed to price order item %s", id)
		}
		total = total.Add(item.LineTotal())
	}

	return total, nil
}

func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// UpdateOrderStatus changes the status only; every other field is immutable.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status is required")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	srv.publish(ctx, entity.OrderEventStatusChanged, order)

	return order, nil
}

// DeleteOrder deletes the line items, then the order, in one transaction.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	var deleted *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		itemRepo := repoFactory.NewOrderItemRepository()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load order")
		}

		itemIDs := make([]uuid.UUID, 0, len(order.OrderItems))
		for _, item := range order.OrderItems {
			itemIDs = append(itemIDs, item.ID)
		}

		if err := itemRepo.DeleteByIDs(ctx, itemIDs); err != nil {
			return errors.Wrap(err, "failed to delete order items")
		}
		if err := orderRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		deleted = order

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute order deletion transaction")
	}

	srv.log(ctx).Info("Order deleted",
		slog.String("orderId", id.String()),
		slog.Int("itemCount", len(deleted.OrderItems)),
	)
	srv.publish(ctx, entity.OrderEventDeleted, deleted)

	return nil
}

func (srv *orderService) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	total, err := srv.orderRepo.TotalSales(ctx)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to compute total sales")
	}

	return total, nil
}

func (srv *orderService) CountOrders(ctx context.Context) (int64, error) {
	count, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrderItem(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	item, err := srv.orderItemRepo.FindWithProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order item")
	}

	return item, nil
}

// publish sends the event after the change is committed. Failures are
// logged and never fail the request.
func (srv *orderService) publish(ctx context.Context, eventType entity.OrderEventType, order *entity.Order) {
	event := service.NewOrderEvent(eventType, order, deliverycontext.GetRequestIDFromContext(ctx))
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.String("orderId", order.ID.String()),
			slog.Any("error", err),
		)
	}
}
