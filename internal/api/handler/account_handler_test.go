package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bankstack/bankstack/internal/api/middleware"
	"github.com/bankstack/bankstack/internal/core/domain"
)

type stubAccountService struct {
	getFn  func(ctx context.Context, email string) (*domain.Account, error)
	openFn func(ctx context.Context, email, accountType string) (*domain.Account, error)
}

func (s *stubAccountService) Get(ctx context.Context, email string) (*domain.Account, error) {
	return s.getFn(ctx, email)
}

func (s *stubAccountService) Open(ctx context.Context, email, accountType string) (*domain.Account, error) {
	return s.openFn(ctx, email, accountType)
}

func TestAccountHandler_View_WithAccount(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		getFn: func(ctx context.Context, email string) (*domain.Account, error) {
			return &domain.Account{
				Email:       email,
				AccountType: domain.AccountTypeChecking,
				Balance:     domain.DefaultBalance,
			}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newFormContext(e, http.MethodGet, "/ui/account", nil)
	c.Set(middleware.EmailContextKey, "a@b.com")

	if err := handler.View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "a@b.com") || !strings.Contains(body, "1000.00") {
		t.Fatalf("expected account details in page, got %q", body)
	}
}

func TestAccountHandler_View_NoAccount(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		getFn: func(ctx context.Context, email string) (*domain.Account, error) {
			return nil, domain.ErrAccountNotFound
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newFormContext(e, http.MethodGet, "/ui/account", nil)
	c.Set(middleware.EmailContextKey, "a@b.com")

	if err := handler.View(c); err != nil {
		t.Fatalf("missing account must render the open form, got %v", err)
	}
	if !strings.Contains(rec.Body.String(), "No account yet") {
		t.Fatalf("expected open-account form")
	}
}

func TestAccountHandler_Open_Success(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		openFn: func(ctx context.Context, email, accountType string) (*domain.Account, error) {
			if email != "a@b.com" || accountType != domain.AccountTypeSavings {
				t.Fatalf("unexpected args: %s %s", email, accountType)
			}
			return &domain.Account{Email: email, AccountType: accountType, Balance: domain.DefaultBalance}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newFormContext(e, http.MethodPost, "/ui/account", url.Values{
		"account_type": {"savings"},
	})
	c.Set(middleware.EmailContextKey, "a@b.com")

	if err := handler.Open(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/ui/account" {
		t.Fatalf("expected redirect to /ui/account, got %q", loc)
	}
}

func TestAccountHandler_Open_InvalidType(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		openFn: func(ctx context.Context, email, accountType string) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, _ := newFormContext(e, http.MethodPost, "/ui/account", url.Values{
		"account_type": {"premium"},
	})
	c.Set(middleware.EmailContextKey, "a@b.com")

	err := handler.Open(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAccountHandler_Open_MissingIdentity(t *testing.T) {
	e := newAuthEcho()
	handler := NewAccountHandler(&stubAccountService{})

	c, _ := newFormContext(e, http.MethodPost, "/ui/account", url.Values{
		"account_type": {"checking"},
	})

	err := handler.Open(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
