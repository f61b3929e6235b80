// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	IsAdmin   bool
	Street    string
	Apartment string
	Zip       string
	City      string
	Country   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the authenticated email and its access token.
type LoginOutput struct {
	Email string
	Token string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Register creates a customer account. IsAdmin from the input is ignored.
	Register(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// CreateUser creates an account honoring IsAdmin. Admin only.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	CountUsers(ctx context.Context) (int64, error)
}
