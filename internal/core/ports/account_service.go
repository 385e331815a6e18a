package ports

import (
	"context"

	"github.com/bankstack/bankstack/internal/core/domain"
)

type AccountService interface {
	Get(ctx context.Context, email string) (*domain.Account, error)
	Open(ctx context.Context, email, accountType string) (*domain.Account, error)
}
