package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
)

// TransactionKind classifies a credit movement
type TransactionKind string

const (
	KindPurchase TransactionKind = "purchase" // paid through the gateway
	KindGrant    TransactionKind = "grant"    // credited by an admin
	KindBonus    TransactionKind = "bonus"    // welcome bonus
	KindSpend    TransactionKind = "spend"    // link creation or extension
)

// TransactionStatus only moves pending -> success or pending -> failed
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

// ParseTransactionStatus validates a status filter value
func ParseTransactionStatus(raw string) (TransactionStatus, error) {
	s := TransactionStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return s, nil
	}
	return "", errs.NewValidationError("status", fmt.Sprintf("invalid status %q", raw))
}

// IsTerminal reports whether the status can no longer change
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Transaction is an append-only record of one credit movement
type Transaction struct {
	ID          string
	Reference   string // unique: gateway reference or a synthetic one
	UserID      string
	Kind        TransactionKind
	Status      TransactionStatus
	Amount      int64 // credits
	Reason      string
	Metadata    map[string]any
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// TransactionOption customises a new transaction
type TransactionOption func(*Transaction)

// WithStatus creates the transaction directly in a given status
func WithStatus(status TransactionStatus) TransactionOption {
	return func(t *Transaction) {
		t.Status = status
	}
}

// WithMetadata attaches free-form metadata
func WithMetadata(md map[string]any) TransactionOption {
	return func(t *Transaction) {
		t.Metadata = md
	}
}

// NewTransaction creates a pending transaction unless overridden by options.
// Transactions created terminal get ProcessedAt stamped.
func NewTransaction(
	reference string,
	userID string,
	kind TransactionKind,
	amount int64,
	reason string,
	timeProvider coreport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, errs.ErrInvalidReference
	}
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	switch kind {
	case KindPurchase, KindGrant, KindBonus, KindSpend:
	default:
		return nil, errs.NewValidationError("kind", fmt.Sprintf("unknown transaction kind %q", kind))
	}
	if err := ValidateCreditAmount(amount); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	tx := &Transaction{
		Reference: reference,
		UserID:    userID,
		Kind:      kind,
		Status:    StatusPending,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(tx)
	}
	if tx.Status.IsTerminal() {
		tx.ProcessedAt = &now
	}
	return tx, nil
}

// MarkSucceeded moves a pending transaction to success
func (t *Transaction) MarkSucceeded(timeProvider coreport.TimeProvider) error {
	return t.transition(StatusSuccess, timeProvider)
}

// MarkFailed moves a pending transaction to failed
func (t *Transaction) MarkFailed(timeProvider coreport.TimeProvider) error {
	return t.transition(StatusFailed, timeProvider)
}

func (t *Transaction) transition(to TransactionStatus, timeProvider coreport.TimeProvider) error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", errs.ErrTransactionTerminal, t.Reference, t.Status)
	}
	now := timeProvider.Now()
	t.Status = to
	t.ProcessedAt = &now
	return nil
}

// IsCredit reports whether the movement increases the balance
func (t *Transaction) IsCredit() bool {
	return t.Kind != KindSpend
}
