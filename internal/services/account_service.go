package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/models/db_models"
	"messhall/internal/repositories"
	"messhall/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (*db_models.Account, error)
	Authenticate(ctx context.Context, email, password string) (*db_models.Account, error)
	// Login authenticates and issues a student session token.
	Login(ctx context.Context, email, password string) (string, *db_models.Account, error)
	ListAccounts(ctx context.Context) ([]db_models.Account, error)
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	auth        Authenticator
	tokens      *utils.TokenIssuer
	newRoom     func() string
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, auth Authenticator, tokens *utils.TokenIssuer, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		auth:        auth,
		tokens:      tokens,
		newRoom:     utils.GenerateRoom,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, name, email, password string) (*db_models.Account, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, utils.NewValidationError("name", "is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, utils.NewValidationError("email", "must be a valid address")
	}
	if password == "" {
		return nil, utils.NewValidationError("password", "is required")
	}

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, asServiceError(err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	stored, err := a.auth.Hash(password)
	if err != nil {
		return nil, asServiceError(err)
	}

	account := &db_models.Account{
		Name:     name,
		Email:    email,
		Password: stored,
		Room:     a.newRoom(),
	}
	if err := a.accountRepo.InsertWithNextID(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.logger.Error("register account", zap.String("email", email), zap.Error(err))
		return nil, asServiceError(err)
	}

	a.logger.Info("account registered",
		zap.String("student_id", account.ID),
		zap.String("room", account.Room))
	return account, nil
}

func (a *AccountService) Authenticate(ctx context.Context, email, password string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, asServiceError(err)
	}
	if account == nil || !a.auth.Verify(account.Password, password) {
		return nil, utils.ErrInvalidCredentials
	}
	return account, nil
}

func (a *AccountService) Login(ctx context.Context, email, password string) (string, *db_models.Account, error) {
	account, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := a.tokens.CreateToken(account.ID, utils.RoleStudent)
	if err != nil {
		return "", nil, asServiceError(err)
	}
	return token, account, nil
}

func (a *AccountService) ListAccounts(ctx context.Context) ([]db_models.Account, error) {
	accounts, err := a.accountRepo.List(ctx)
	if err != nil {
		return nil, asServiceError(err)
	}
	return accounts, nil
}

func (a *AccountService) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, strings.ToUpper(strings.TrimSpace(id)))
	if err != nil {
		return nil, asServiceError(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, asServiceError(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}
