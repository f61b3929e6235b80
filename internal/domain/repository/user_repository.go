// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository is the credential store.
type UserRepository interface {
	// FindByID returns ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	List(ctx context.Context) ([]*entity.User, error)

	// Create returns ErrUserAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}
