package domain

import (
	"errors"
	"time"
)

var ErrAccountExists = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")

// DefaultBalance is the opening balance credited to every new account.
const DefaultBalance = 1000.0

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// Account is the single balance record kept per verified identity.
type Account struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	AccountType string    `json:"account_type"`
	Balance     float64   `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}
