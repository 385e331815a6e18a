package ports

import (
	"context"

	"github.com/bankstack/bankstack/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// LoginAttemptRepository appends to the audit log. Records are never
// mutated or deleted.
type LoginAttemptRepository interface {
	Append(ctx context.Context, attempt domain.LoginAttempt) error
}
