package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mall/internal/domain/entity"
	domainerrors "mall/internal/domain/errors"
	"mall/internal/domain/repository"
	mockRepo "mall/internal/mocks/repository"
	mockSvc "mall/internal/mocks/service"
	"mall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "vendor@example.com",
		Name:     "Test Vendor",
		Password: "Password123!",
		Role:     entity.RoleVendor,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrAccountNotFound)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account"), "hashed_password").
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	account, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, input.Email, account.Email)
	assert.Equal(t, entity.RoleVendor, account.Role)
	assert.True(t, account.Active)
}

func TestAccountService_Signup_AdminRoleRefused(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "root@example.com",
		Name:     "Would-be Admin",
		Password: "Password123!",
		Role:     entity.RoleAdmin,
	}

	account, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "vendor@example.com",
		Name:     "Test Vendor",
		Password: "Password123!",
		Role:     entity.RoleVendor,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered"))

	account, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "vendor@example.com", Password: "Password123!"}

	account := &entity.Account{
		ID:     uuid.New(),
		Email:  input.Email,
		Role:   entity.RoleVendor,
		Active: true,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(account, nil)
	fx.accountRepo.EXPECT().FindPasswordHash(ctx, input.Email).Return("hashed_password", nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(account.ID, entity.RoleVendor).Return("access_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, account.ID, output.Account.ID)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "Password123!"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "vendor@example.com", Password: "Password123!"}

	account := &entity.Account{ID: uuid.New(), Email: input.Email, Role: entity.RoleVendor, Active: false}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(account, nil)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestAccountService_Login_PasswordMismatch(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "vendor@example.com", Password: "wrong"}

	account := &entity.Account{ID: uuid.New(), Email: input.Email, Role: entity.RoleVendor, Active: true}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(account, nil)
	fx.accountRepo.EXPECT().FindPasswordHash(ctx, input.Email).Return("hashed_password", nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_GetAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	actor := vendorActor()
	account := &entity.Account{ID: actor.AccountID, Email: "vendor@example.com", Role: entity.RoleVendor, Active: true}

	fx.accountRepo.EXPECT().FindByID(ctx, actor.AccountID).Return(account, nil)

	result, err := fx.service.GetAccount(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, actor.AccountID, result.ID)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	actor := vendorActor()

	fx.accountRepo.EXPECT().FindByID(ctx, actor.AccountID).Return(nil, repository.ErrAccountNotFound)

	result, err := fx.service.GetAccount(ctx, actor)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
