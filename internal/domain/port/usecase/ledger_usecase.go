package usecase

import (
	"context"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// CreditRequest describes a credit applied at most once per Reference
type CreditRequest struct {
	Reference string
	UserID    string
	Kind      entity.TransactionKind
	Amount    int64
	Reason    string
	Metadata  map[string]any
}

// CreditOnceResult reports what CreditOnce did
type CreditOnceResult struct {
	Applied bool                     // true only for the call that moved the balance
	Status  entity.TransactionStatus // recorded status of the reference afterwards
	Balance int64                    // balance after the credit, zero when not applied
}

// LedgerUseCase is the only component that moves balances.
// Calls made with a transactional context join that transaction.
type LedgerUseCase interface {
	// Debit subtracts amount if and only if the balance covers it
	//
	// Possible errors:
	// - ErrInvalidAmount: If amount <= 0
	// - InsufficientBalanceError: If the balance is too low (nothing changes)
	// - ErrUserNotFound
	Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error)

	// Credit adds amount unconditionally
	Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error)

	// CreditOnce settles a reference: a pending row is moved to success and
	// credited; a missing row is inserted as success and credited; a row that
	// is already terminal is left alone and its status returned.
	CreditOnce(ctx context.Context, req CreditRequest) (*CreditOnceResult, error)
}
