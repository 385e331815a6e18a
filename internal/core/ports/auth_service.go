package ports

import (
	"context"

	"github.com/bankstack/bankstack/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password, sourceIP string) (string, error)
	ForgotPassword(ctx context.Context, email string) error

	// CurrentUser resolves a verified token subject to its stored user
	// record. A token can outlive its user; this is where that shows up
	// as ErrUserNotFound.
	CurrentUser(ctx context.Context, email string) (*domain.User, error)
}
