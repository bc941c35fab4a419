package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopmart/internal/domain/entity"
	domainerrors "shopmart/internal/domain/errors"
	"shopmart/internal/domain/repository"
	mockRepo "shopmart/internal/mocks/repository"
	mockService "shopmart/internal/mocks/service"
	"shopmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTxManager makes Execute run its callback against the given factory.
func passthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

func TestAuthService_Register(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)

	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)

	generatedID := uuid.New()
	userRepo.EXPECT().FindByEmail(mock.Anything, "new@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Hash("Sup3rSecret!").Return("hashed-password", nil)
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "new@example.com", user.Email)
			assert.Equal(t, "hashed-password", user.PasswordHash)
			user.ID = generatedID
			return nil
		})

	svc := NewAuthService(AuthServiceParams{
		TxManager:    passthroughTxManager(t, factory),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       testLogger(),
	})

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)
	assert.Equal(t, generatedID.String(), output.User.ID)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)

	userRepo.EXPECT().FindByEmail(mock.Anything, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    passthroughTxManager(t, factory),
		UserRepo:     userRepo,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Sup3rSecret!",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "stored-hash"}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(user, nil)

	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Check("Sup3rSecret!", "stored-hash").Return(true)

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       testLogger(),
	})

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "Bearer", output.TokenType)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "stored-hash"}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(user, nil)

	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
