package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bankstack/bankstack/internal/core/domain"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	creates  int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	a, ok := r.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[account.Email]; exists {
		return nil, domain.ErrAccountExists
	}
	r.creates++
	clone := *account
	clone.ID = account.Email
	r.accounts[clone.Email] = &clone
	out := clone
	return &out, nil
}

func TestAccountService_Open_DefaultBalance(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	account, err := svc.Open(context.Background(), "a@b.com", domain.AccountTypeSavings)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if account.Balance != domain.DefaultBalance {
		t.Fatalf("expected opening balance %v, got %v", domain.DefaultBalance, account.Balance)
	}
	if account.AccountType != domain.AccountTypeSavings {
		t.Fatalf("unexpected account type %q", account.AccountType)
	}
}

func TestAccountService_Open_Idempotent(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	first, err := svc.Open(context.Background(), "a@b.com", domain.AccountTypeChecking)
	if err != nil {
		t.Fatalf("first Open returned error: %v", err)
	}

	second, err := svc.Open(context.Background(), "a@b.com", domain.AccountTypeSavings)
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one insert, got %d", repo.creates)
	}
	if second.AccountType != first.AccountType || second.Balance != first.Balance {
		t.Fatalf("second Open must return the existing record unchanged: %+v vs %+v", first, second)
	}
}

func TestAccountService_Open_UnknownTypeDefaultsToChecking(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	account, err := svc.Open(context.Background(), "a@b.com", "premium")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if account.AccountType != domain.AccountTypeChecking {
		t.Fatalf("expected checking fallback, got %q", account.AccountType)
	}
}

func TestAccountService_Get_NotFound(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "nobody@b.com"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
