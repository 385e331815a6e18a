package ports

import (
	"context"

	"github.com/bankstack/bankstack/internal/core/domain"
)

// AccountRepository defines the interface for balance-record persistence.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
