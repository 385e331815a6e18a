package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankstack/bankstack/internal/core/domain"
	"github.com/bankstack/bankstack/internal/core/ports"
)

// AccountService manages the single balance record kept per identity.
type AccountService struct {
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, logger: logger}
}

// Get returns the caller's account, or ErrAccountNotFound if none was opened.
func (s *AccountService) Get(ctx context.Context, email string) (*domain.Account, error) {
	return s.accounts.FindByEmail(ctx, email)
}

// Open creates the caller's account with the default opening balance. If an
// account already exists the existing record is returned unchanged; a
// concurrent duplicate insert collapses to the same outcome.
func (s *AccountService) Open(ctx context.Context, email, accountType string) (*domain.Account, error) {
	if existing, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	if accountType != domain.AccountTypeChecking && accountType != domain.AccountTypeSavings {
		accountType = domain.AccountTypeChecking
	}

	account := &domain.Account{
		Email:       email,
		AccountType: accountType,
		Balance:     domain.DefaultBalance,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.accounts.Create(ctx, account)
	if errors.Is(err, domain.ErrAccountExists) {
		// Lost a race with another request for the same identity.
		return s.accounts.FindByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("account_type", accountType).Msg("account opened")
	return created, nil
}
