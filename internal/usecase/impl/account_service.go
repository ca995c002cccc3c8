package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mall/internal/delivery/context"
	"mall/internal/domain/entity"
	domainerrors "mall/internal/domain/errors"
	"mall/internal/domain/repository"
	"mall/internal/domain/service"
	"mall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a vendor or client account. Admin accounts are provisioned
// operationally, never through this endpoint.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Account, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("empty signup input")
	}
	if input.Role != entity.RoleVendor && input.Role != entity.RoleClient {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be vendor or client")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	account := &entity.Account{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if _, err := accountRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		return accountRepo.Create(ctx, account, hash)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account created",
		slog.Any("accountID", account.ID), slog.String("role", account.Role.String()))

	return account, nil
}

// Login verifies credentials and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("empty login input")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !account.Active {
		return nil, domainerrors.ErrAccountInactive.WrapMessage("account has been deactivated")
	}

	hash, err := srv.accountRepo.FindPasswordHash(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credentials for login")
	}

	if !srv.hasher.Check(input.Password, hash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginOutput{AccessToken: token, Account: account}, nil
}

// GetAccount returns the public view of the acting account.
func (srv *accountService) GetAccount(ctx context.Context, actor entity.Actor) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, actor.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account does not exist")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}
