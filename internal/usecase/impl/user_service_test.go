package impl

import (
	"context"
	"strings"
	"testing"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	mockRepo "eshop/internal/mocks/repository"
	mockSvc "eshop/internal/mocks/service"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_NeverGrantsAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Jane",
		Email:    " Jane@Example.com ",
		Password: "secret",
		IsAdmin:  true,
		City:     "Prague",
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return !user.IsAdmin && user.Email == "jane@example.com" && user.PasswordHash == "hashed_password"
		})).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, "Prague", user.City)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, input.IsAdmin, "caller input must not be mutated")
}

func TestUserService_CreateUser_KeepsAdminFlag(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "secret",
		IsAdmin:  true,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{Email: "taken@example.com", Password: "secret"}

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.CreateUser(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("secret").Return("", errors.New("boom"))

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{Password: "secret"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestUserService(t)
	long := strings.Repeat("x", 73)

	fx.hasher.EXPECT().Hash(long).Return("", domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes"))

	_, err := fx.service.Register(context.Background(), &usecase.CreateUserInput{Email: "ana@example.com", Password: long})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: "hashed_password",
		IsAdmin:      true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, true).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "JANE@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", output.Email)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	assert.Nil(t, output)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "User not found", appErr.Message())
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordIncorrect))
	fx.tokenService.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestUserService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find user")
	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "secret"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrLoginUserNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestUserService_Queries(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	users := []*entity.User{{ID: id, Name: "Jane"}}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(users[0], nil)
	fx.userRepo.EXPECT().Count(ctx).Return(int64(1), nil)
	fx.userRepo.EXPECT().Delete(ctx, id).Return(nil)

	listed, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	found, err := fx.service.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane", found.Name)

	count, err := fx.service.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, fx.service.DeleteUser(ctx, id))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.EXPECT().Delete(ctx, id).Return(domainerrors.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
