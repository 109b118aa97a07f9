package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/repository"
	mockRepo "isdn/internal/mocks/repository"
	mockSvc "isdn/internal/mocks/service"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserServiceForTest(userRepo *mockRepo.MockUserRepository, hasher *mockSvc.MockPasswordHasher, tokenService *mockSvc.MockTokenService) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})
}

func TestUserService_Register_CreatesCustomer(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	tokenService := new(mockSvc.MockTokenService)
	service := newUserServiceForTest(userRepo, hasher, tokenService)
	ctx := context.Background()

	hasher.On("Hash", "shop123").Return("hashed-password", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	info, err := service.Register(ctx, usecase.RegisterInput{
		Name:     "Retail Customer",
		Email:    "shop@gmail.com",
		Password: "shop123",
		Region:   entity.RegionCentral,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, info.Role)
	assert.Equal(t, entity.RegionCentral, info.Region)
	assert.NotEqual(t, uuid.Nil, info.ID)

	created := userRepo.Calls[0].Arguments.Get(1).(*entity.User)
	assert.Equal(t, "hashed-password", created.PasswordHash)
	userRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestUserService_Register_UnknownRegion(t *testing.T) {
	service := newUserServiceForTest(new(mockRepo.MockUserRepository), new(mockSvc.MockPasswordHasher), new(mockSvc.MockTokenService))

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Retail Customer",
		Email:    "shop@gmail.com",
		Password: "shop123",
		Region:   entity.Region("Atlantis"),
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	service := newUserServiceForTest(userRepo, hasher, new(mockSvc.MockTokenService))
	ctx := context.Background()

	hasher.On("Hash", "shop123").Return("hashed-password", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := service.Register(ctx, usecase.RegisterInput{
		Name:     "Retail Customer",
		Email:    "shop@gmail.com",
		Password: "shop123",
		Region:   entity.RegionCentral,
	})
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestUserService_Login_Succeeds(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	tokenService := new(mockSvc.MockTokenService)
	service := newUserServiceForTest(userRepo, hasher, tokenService)
	ctx := context.Background()

	region := entity.RegionCentral
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Retail Customer",
		Email:        "shop@gmail.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleCustomer,
		Region:       &region,
	}

	userRepo.On("FindByEmail", ctx, "shop@gmail.com").Return(user, nil)
	hasher.On("Check", "shop123", "hashed-password").Return(true)
	tokenService.On("GenerateToken", user).Return("signed-token", nil)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "shop@gmail.com", Password: "shop123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, entity.RegionCentral, out.User.Region)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	service := newUserServiceForTest(userRepo, hasher, new(mockSvc.MockTokenService))
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "shop@gmail.com", PasswordHash: "hashed-password"}
	userRepo.On("FindByEmail", ctx, "shop@gmail.com").Return(user, nil)
	hasher.On("Check", "wrong", "hashed-password").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{Email: "shop@gmail.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	service := newUserServiceForTest(userRepo, new(mockSvc.MockPasswordHasher), new(mockSvc.MockTokenService))
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "missing@isdn.com").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{Email: "missing@isdn.com", Password: "whatever"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
