package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/service"
	mockRepo "eshop/internal/mocks/repository"
	mockSvc "eshop/internal/mocks/service"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service       *orderService
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	orderRepo     *mockRepo.MockOrderRepository
	orderItemRepo *mockRepo.MockOrderItemRepository
	txUserRepo    *mockRepo.MockUserRepository
	txOrderRepo   *mockRepo.MockOrderRepository
	txItemRepo    *mockRepo.MockOrderItemRepository
	publisher     *mockSvc.MockEventPublisher
}

var orderTestNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func createTestOrderService(t *testing.T) orderServiceFixtures {
	f := orderServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		orderItemRepo: mockRepo.NewMockOrderItemRepository(t),
		txUserRepo:    mockRepo.NewMockUserRepository(t),
		txOrderRepo:   mockRepo.NewMockOrderRepository(t),
		txItemRepo:    mockRepo.NewMockOrderItemRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}

	srv := NewOrderService(OrderServiceParams{
		TxManager:     f.txManager,
		OrderRepo:     f.orderRepo,
		OrderItemRepo: f.orderItemRepo,
		Publisher:     f.publisher,
		Logger:        newDiscardLogger(),
	}).(*orderService)
	srv.now = func() time.Time { return orderTestNow }
	f.service = srv

	return f
}

func (f orderServiceFixtures) expectTx(t *testing.T) {
	runInTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewUserRepository().Return(f.txUserRepo).Maybe()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Maybe()
	f.factory.EXPECT().NewOrderItemRepository().Return(f.txItemRepo).Maybe()
}

func validOrderInput(userID uuid.UUID, lines ...entity.OrderLine) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		Items:            lines,
		ShippingAddress1: "Flowers Street , 45",
		ShippingAddress2: "1-B",
		City:             "Prague",
		Zip:              "00000",
		Country:          "Czech Republic",
		Phone:            "+420702241333",
		UserID:           userID,
	}
}

// stubLineItems records created items and answers FindWithProduct with the given prices.
func (f orderServiceFixtures) stubLineItems(prices map[uuid.UUID]decimal.Decimal) map[uuid.UUID]*entity.OrderItem {
	created := make(map[uuid.UUID]*entity.OrderItem)

	f.txItemRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.OrderItem")).
		RunAndReturn(func(_ context.Context, item *entity.OrderItem) error {
			created[item.ID] = item

			return nil
		})

	f.txItemRepo.EXPECT().
		FindWithProduct(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.OrderItem, error) {
			item, ok := created[id]
			if !ok {
				return nil, domainerrors.ErrOrderItemNotFound
			}
			price, ok := prices[item.ProductID]
			if !ok {
				return nil, domainerrors.ErrProductNotFound
			}
			priced := *item
			priced.Product = &entity.Product{ID: item.ProductID, Price: price}

			return &priced, nil
		})

	return created
}

func TestOrderService_CreateOrder_DerivesTotalPrice(t *testing.T) {
	f := createTestOrderService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	userID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()
	input := validOrderInput(userID,
		entity.OrderLine{ProductID: p1, Quantity: 2},
		entity.OrderLine{ProductID: p2, Quantity: 1},
	)

	f.expectTx(t)
	f.txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	created := f.stubLineItems(map[uuid.UUID]decimal.Decimal{
		p1: decimal.RequireFromString("10.00"),
		p2: decimal.RequireFromString("25.00"),
	})

	var stored *entity.Order
	f.txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			stored = order

			return nil
		})
	f.txItemRepo.EXPECT().
		Attach(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) error {
			assert.Equal(t, stored.ID, orderID)
			assert.Len(t, itemIDs, 2)
			for position, id := range itemIDs {
				assert.Equal(t, position, created[id].Position)
				assert.Nil(t, created[id].OrderID)
			}

			return nil
		})
	f.txOrderRepo.EXPECT().
		FindByID(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Order, error) {
			reloaded := *stored
			reloaded.OrderItems = []*entity.OrderItem{{ID: uuid.New()}, {ID: uuid.New()}}

			return &reloaded, nil
		})

	var published *service.OrderEvent
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.OrderEvent) error {
			published = event

			return nil
		})

	order, err := f.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "45.00", order.TotalPrice.StringFixed(2))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, orderTestNow, order.DateOrdered)
	assert.Equal(t, userID, order.UserID)

	require.NotNil(t, published)
	assert.Equal(t, entity.OrderEventCreated, published.Type)
	assert.Equal(t, order.ID.String(), published.OrderID)
	assert.Equal(t, "req-1", published.RequestID)
	assert.Equal(t, 2, published.ItemCount)
}

func TestOrderService_CreateOrder_UsesStoredPrices(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	p1 := uuid.New()
	input := validOrderInput(userID, entity.OrderLine{ProductID: p1, Quantity: 3})

	f.expectTx(t)
	f.txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.stubLineItems(map[uuid.UUID]decimal.Decimal{p1: decimal.RequireFromString("0.10")})

	var stored *entity.Order
	f.txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			stored = order

			return nil
		})
	f.txItemRepo.EXPECT().Attach(ctx, mock.Anything, mock.Anything).Return(nil)
	f.txOrderRepo.EXPECT().
		FindByID(ctx, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) {
			return stored, nil
		})
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := f.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.30").Equal(order.TotalPrice))
}

func TestOrderService_CreateOrder_UnknownProductRollsBack(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	known, unknown := uuid.New(), uuid.New()
	input := validOrderInput(userID,
		entity.OrderLine{ProductID: known, Quantity: 1},
		entity.OrderLine{ProductID: unknown, Quantity: 1},
	)

	f.expectTx(t)
	f.txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.stubLineItems(map[uuid.UUID]decimal.Decimal{known: decimal.NewFromInt(5)})

	order, err := f.service.CreateOrder(ctx, input)

	assert.Nil(t, order)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	f.txOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_UnknownUser(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validOrderInput(userID, entity.OrderLine{ProductID: uuid.New(), Quantity: 1})

	f.expectTx(t)
	f.txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, domainerrors.ErrUserNotFound)

	_, err := f.service.CreateOrder(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	f.txItemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	userID := uuid.New()
	line := entity.OrderLine{ProductID: uuid.New(), Quantity: 1}

	tests := []struct {
		name   string
		mutate func(in *usecase.CreateOrderInput)
		detail string
	}{
		{
			name:   "no items",
			mutate: func(in *usecase.CreateOrderInput) { in.Items = nil },
			detail: "orderItems must not be empty",
		},
		{
			name:   "zero quantity",
			mutate: func(in *usecase.CreateOrderInput) { in.Items[0].Quantity = 0 },
			detail: "orderItems.quantity must be positive",
		},
		{
			name:   "missing product",
			mutate: func(in *usecase.CreateOrderInput) { in.Items[0].ProductID = uuid.Nil },
			detail: "orderItems.product is required",
		},
		{
			name:   "missing city",
			mutate: func(in *usecase.CreateOrderInput) { in.City = "  " },
			detail: "city is required",
		},
		{
			name: "first missing field wins",
			mutate: func(in *usecase.CreateOrderInput) {
				in.Zip = ""
				in.Phone = ""
			},
			detail: "zip is required",
		},
		{
			name:   "missing user",
			mutate: func(in *usecase.CreateOrderInput) { in.UserID = uuid.Nil },
			detail: "user is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t)
			input := validOrderInput(userID, line)
			tt.mutate(input)

			_, err := f.service.CreateOrder(context.Background(), input)

			require.Error(t, err)
			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, tt.detail, appErr.Details())
		})
	}
}

func TestOrderService_CreateOrder_PublishFailureIsIgnored(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	p1 := uuid.New()
	input := validOrderInput(userID, entity.OrderLine{ProductID: p1, Quantity: 1})

	f.expectTx(t)
	f.txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.stubLineItems(map[uuid.UUID]decimal.Decimal{p1: decimal.NewFromInt(7)})
	f.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.txItemRepo.EXPECT().Attach(ctx, mock.Anything, mock.Anything).Return(nil)
	f.txOrderRepo.EXPECT().
		FindByID(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Order, error) {
			return &entity.Order{ID: id, Status: entity.OrderStatusPending, TotalPrice: decimal.NewFromInt(7)}, nil
		})
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := f.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "7.00", order.TotalPrice.StringFixed(2))
}

func TestOrderService_DeleteOrder_CascadesItems(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	item1, item2 := uuid.New(), uuid.New()
	order := &entity.Order{
		ID:         orderID,
		Status:     entity.OrderStatusPending,
		OrderItems: []*entity.OrderItem{{ID: item1}, {ID: item2}},
	}

	f.expectTx(t)
	f.txOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	deleteItems := f.txItemRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{item1, item2}).Return(nil)
	f.txOrderRepo.EXPECT().Delete(ctx, orderID).Return(nil).NotBefore(deleteItems.Call)
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == entity.OrderEventDeleted && event.OrderID == orderID.String()
		})).
		Return(nil)

	err := f.service.DeleteOrder(ctx, orderID)

	require.NoError(t, err)
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	f.expectTx(t)
	f.txOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	err := f.service.DeleteOrder(ctx, orderID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	f.txItemRepo.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)
}

func TestOrderService_DeleteOrder_OrderDeleteFailure(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	itemID := uuid.New()

	f.expectTx(t)
	f.txOrderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, OrderItems: []*entity.OrderItem{{ID: itemID}}}, nil)
	f.txItemRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{itemID}).Return(nil)
	f.txOrderRepo.EXPECT().Delete(ctx, orderID).Return(domainerrors.ErrTransactionFailed)

	err := f.service.DeleteOrder(ctx, orderID)

	require.Error(t, err)
	f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	total := decimal.RequireFromString("45.00")

	f.orderRepo.EXPECT().UpdateStatus(ctx, orderID, "Shipped").Return(nil)
	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: "Shipped", TotalPrice: total}, nil)
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == entity.OrderEventStatusChanged && event.Status == "Shipped"
		})).
		Return(nil)

	order, err := f.service.UpdateOrderStatus(ctx, orderID, " Shipped ")

	require.NoError(t, err)
	assert.Equal(t, "Shipped", order.Status)
	assert.True(t, total.Equal(order.TotalPrice))
}

func TestOrderService_UpdateOrderStatus_EmptyStatus(t *testing.T) {
	f := createTestOrderService(t)

	_, err := f.service.UpdateOrderStatus(context.Background(), uuid.New(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	f.orderRepo.EXPECT().UpdateStatus(ctx, orderID, "Shipped").Return(domainerrors.ErrOrderNotFound)

	_, err := f.service.UpdateOrderStatus(ctx, orderID, "Shipped")

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Reports(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	f.orderRepo.EXPECT().TotalSales(ctx).Return(decimal.RequireFromString("120.50"), nil)
	f.orderRepo.EXPECT().Count(ctx).Return(int64(3), nil)

	total, err := f.service.TotalSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, "120.50", total.StringFixed(2))

	count, err := f.service.CountOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestOrderService_ListUserOrders(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), UserID: userID}}
	f.orderRepo.EXPECT().ListByUser(ctx, userID).Return(orders, nil)

	got, err := f.service.ListUserOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_GetOrderItem_NotFound(t *testing.T) {
	f := createTestOrderService(t)

	ctx := context.Background()
	itemID := uuid.New()
	f.orderItemRepo.EXPECT().FindWithProduct(ctx, itemID).Return(nil, domainerrors.ErrOrderItemNotFound)

	_, err := f.service.GetOrderItem(ctx, itemID)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderItemNotFound))
}
