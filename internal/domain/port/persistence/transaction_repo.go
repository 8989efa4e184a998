package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	Status *entity.TransactionStatus
	Page   int
	Limit  int
}

// LedgerTotals aggregates successful purchases
type LedgerTotals struct {
	Purchases   int64
	CreditsSold int64
}

// TransactionRepository defines the methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If a transaction with the same reference exists
	// - ErrUserNotFound: If referenced user does not exist
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByReference retrieves a transaction by its unique reference
	//
	// Possible errors:
	// - ErrTransactionNotFound
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// TransitionStatus moves a pending transaction to a terminal status.
	// It reports false when the row was no longer pending, in which case
	// nothing was written.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has the reference
	TransitionStatus(ctx context.Context, reference string, to entity.TransactionStatus, processedAt time.Time) (bool, error)

	// ListByUser returns a page of the user's transactions, newest first,
	// plus the total matching count
	ListByUser(ctx context.Context, userID string, filter TransactionFilter) ([]*entity.Transaction, int64, error)

	// PurchaseTotals sums successful purchases
	PurchaseTotals(ctx context.Context) (LedgerTotals, error)
}
