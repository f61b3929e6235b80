package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"eshop/config"
	"eshop/internal/domain/repository"
	mockRepo "eshop/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxGalleryImages int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Uploads: &config.UploadsConfig{
			MaxGalleryImages: maxGalleryImages,
		},
	}
}

// runInTx makes txManager run the callback against factory and return its error.
func runInTx(t *testing.T, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
