package usecase

import (
	"context"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
)

// TransactionPage is one page of a user's ledger history
type TransactionPage struct {
	Items []*entity.Transaction
	Total int64
	Page  int
	Limit int
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// EnsureUser returns the account for identity, creating it on first sight
	EnsureUser(ctx context.Context, identity entity.Identity) (*entity.User, error)

	// Profile returns the user with current balance and binding
	Profile(ctx context.Context, userID string) (*entity.User, error)

	// SetNotifications toggles the notification preference flag
	SetNotifications(ctx context.Context, userID string, enabled bool) (*entity.User, error)

	// Transactions lists the user's ledger history
	Transactions(ctx context.Context, userID string, filter persistence.TransactionFilter) (*TransactionPage, error)
}
