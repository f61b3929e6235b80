// Package impl contains the implementation of the application's business logic.
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
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account; the admin flag is never taken from the client.
func (srv *userService) Register(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	customer := *input
	customer.IsAdmin = false

	return srv.createUser(ctx, &customer)
}

// CreateUser creates an account with the requested admin flag.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	return srv.createUser(ctx, input)
}

func (srv *userService) createUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Creating user", slog.String("email", email), slog.Bool("isAdmin", input.IsAdmin))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return nil, err
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        input.Phone,
		IsAdmin:      input.IsAdmin,
		Street:       input.Street,
		Apartment:    input.Apartment,
		Zip:          input.Zip,
		City:         input.City,
		Country:      input.Country,
		CreatedAt:    srv.now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("User created", slog.Any("userID", user.ID))

	return user, nil
}

// Login checks the credentials and issues a token carrying {userId, isAdmin}.
// Unknown email and wrong password are distinct client errors.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrLoginUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrPasswordIncorrect, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Email: user.Email, Token: token}, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

func (srv *userService) CountUsers(ctx context.Context) (int64, error) {
	count, err := srv.userRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
