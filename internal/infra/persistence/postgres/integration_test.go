//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/infra/persistence/postgres"
	mockSvc "eshop/internal/mocks/service"
	"eshop/internal/usecase"
	"eshop/internal/usecase/impl"
	"eshop/migrations"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type store struct {
	db         *gorm.DB
	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	items      repository.OrderItemRepository
	txManager  repository.TransactionManager
}

func setupStore(t *testing.T) *store {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "eshop",
			"POSTGRES_PASSWORD": "eshop",
			"POSTGRES_DB":       "eshop",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://eshop:eshop@%s:%s/eshop?sslmode=disable", host, port.Port())

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, sqlDB.PingContext(ctx))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err = migrations.Run(ctx, sqlDB, migrations.Up, logger)
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return &store{
		db:         db,
		users:      postgres.NewUserRepository(db),
		categories: postgres.NewCategoryRepository(db),
		products:   postgres.NewProductRepository(db),
		orders:     postgres.NewOrderRepository(db),
		items:      postgres.NewOrderItemRepository(db),
		txManager:  postgres.NewTransactionManager(db),
	}
}

func (s *store) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        email,
		PasswordHash: "$2a$04$placeholder",
		Phone:        "+351000000",
	}
	require.NoError(t, s.users.Create(context.Background(), user))

	return user
}

func (s *store) seedProduct(t *testing.T, categoryID uuid.UUID, name, price string, featured bool) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:           uuid.New(),
		Name:         name,
		Description:  name + " description",
		Price:        decimal.RequireFromString(price),
		CategoryID:   categoryID,
		CountInStock: 5,
		IsFeatured:   featured,
		Images:       []string{},
		DateCreated:  time.Now(),
	}
	require.NoError(t, s.products.Create(context.Background(), product))

	return product
}

func (s *store) countItems(t *testing.T) int64 {
	t.Helper()

	var n int64
	require.NoError(t, s.db.Table("order_items").Count(&n).Error)

	return n
}

func TestStore_Integration(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	category := &entity.Category{ID: uuid.New(), Name: "Rings", Icon: "radio-button-on-outline", Color: "#E8B4B8"}
	require.NoError(t, s.categories.Create(ctx, category))

	user := s.seedUser(t, "ana@example.com")
	ring := s.seedProduct(t, category.ID, "Signet", "10.00", false)
	band := s.seedProduct(t, category.ID, "Band", "25.00", true)

	t.Run("duplicate email", func(t *testing.T) {
		err := s.users.Create(ctx, &entity.User{
			ID: uuid.New(), Name: "Other", Email: "ana@example.com", PasswordHash: "x", Phone: "1",
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("products by category", func(t *testing.T) {
		products, err := s.products.List(ctx, entity.ProductFilter{CategoryIDs: []uuid.UUID{category.ID}})
		require.NoError(t, err)
		assert.Len(t, products, 2)

		products, err = s.products.List(ctx, entity.ProductFilter{CategoryIDs: []uuid.UUID{uuid.New()}})
		require.NoError(t, err)
		assert.Empty(t, products)

		featured, err := s.products.ListFeatured(ctx, 5)
		require.NoError(t, err)
		require.Len(t, featured, 1)
		assert.Equal(t, band.ID, featured[0].ID)
		require.NotNil(t, featured[0].Category)
		assert.Equal(t, "Rings", featured[0].Category.Name)
	})

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	orders := impl.NewOrderService(impl.OrderServiceParams{
		TxManager:     s.txManager,
		OrderRepo:     s.orders,
		OrderItemRepo: s.items,
		Publisher:     publisher,
		Logger:        logger,
	})

	input := func(lines ...entity.OrderLine) *usecase.CreateOrderInput {
		return &usecase.CreateOrderInput{
			Items:            lines,
			ShippingAddress1: "1 Main St",
			ShippingAddress2: "Apt 2",
			City:             "Lisbon",
			Zip:              "1000-001",
			Country:          "PT",
			Phone:            "+351000000",
			UserID:           user.ID,
		}
	}

	var orderID uuid.UUID

	t.Run("create order derives total", func(t *testing.T) {
		order, err := orders.CreateOrder(ctx, input(
			entity.OrderLine{ProductID: ring.ID, Quantity: 2},
			entity.OrderLine{ProductID: band.ID, Quantity: 1},
		))
		require.NoError(t, err)
		orderID = order.ID

		assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("45")), order.TotalPrice.String())
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		require.Len(t, order.OrderItems, 2)
		assert.Equal(t, ring.ID, order.OrderItems[0].Product.ID)
		assert.Equal(t, band.ID, order.OrderItems[1].Product.ID)
		require.NotNil(t, order.User)
		assert.Equal(t, "ana@example.com", order.User.Email)

		total, err := orders.TotalSales(ctx)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("45")))
	})

	t.Run("unknown product rolls back", func(t *testing.T) {
		before := s.countItems(t)

		_, err := orders.CreateOrder(ctx, input(
			entity.OrderLine{ProductID: ring.ID, Quantity: 1},
			entity.OrderLine{ProductID: uuid.New(), Quantity: 1},
		))
		require.ErrorIs(t, err, domainerrors.ErrProductNotFound)

		assert.Equal(t, before, s.countItems(t))
		count, err := orders.CountOrders(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("status update", func(t *testing.T) {
		order, err := orders.UpdateOrderStatus(ctx, orderID, "Shipped")
		require.NoError(t, err)
		assert.Equal(t, "Shipped", order.Status)
	})

	t.Run("large quantity is stored", func(t *testing.T) {
		order, err := orders.CreateOrder(ctx, input(entity.OrderLine{ProductID: band.ID, Quantity: 3_000_000_000}))
		require.NoError(t, err)
		assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("75000000000")), order.TotalPrice.String())

		stored, err := orders.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, 3_000_000_000, stored.OrderItems[0].Quantity)
		require.NoError(t, orders.DeleteOrder(ctx, order.ID))
	})

	t.Run("oversized price is a validation error", func(t *testing.T) {
		err := s.products.Create(ctx, &entity.Product{
			ID:          uuid.New(),
			Name:        "Crown",
			Description: "Priceless",
			Price:       decimal.RequireFromString("99999999999"),
			CategoryID:  category.ID,
			Images:      []string{},
			DateCreated: time.Now(),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("delete cascades line items", func(t *testing.T) {
		require.NoError(t, orders.DeleteOrder(ctx, orderID))

		assert.Zero(t, s.countItems(t))
		_, err := orders.GetOrder(ctx, orderID)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
		assert.ErrorIs(t, orders.DeleteOrder(ctx, orderID), domainerrors.ErrOrderNotFound)
	})

	t.Run("deleting a user keeps their orders", func(t *testing.T) {
		buyer := s.seedUser(t, "buyer@example.com")
		in := input(entity.OrderLine{ProductID: ring.ID, Quantity: 1})
		in.UserID = buyer.ID
		order, err := orders.CreateOrder(ctx, in)
		require.NoError(t, err)

		require.NoError(t, s.users.Delete(ctx, buyer.ID))

		kept, err := orders.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, buyer.ID, kept.UserID)
		assert.Nil(t, kept.User)
	})
}
