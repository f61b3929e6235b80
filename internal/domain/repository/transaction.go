package repository

import "context"

// TransactionManager runs multi-step units of work atomically.
// The use case layer depends on it without knowing the database driver.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error or panics, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCategoryRepository() CategoryRepository
	NewProductRepository() ProductRepository
	NewOrderRepository() OrderRepository
	NewOrderItemRepository() OrderItemRepository
}
