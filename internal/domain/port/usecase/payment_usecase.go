package usecase

import (
	"context"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// PaymentSource tells which path asked for reconciliation
type PaymentSource string

const (
	SourceClient   PaymentSource = "client"
	SourceCallback PaymentSource = "callback"
)

// CheckoutSession is where the payer completes a purchase
type CheckoutSession struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Credits          int64
	AmountMinor      int64
}

// PaymentOutcome is the recorded result for a reference
type PaymentOutcome struct {
	Reference string
	Status    entity.TransactionStatus
	Credits   int64
	Credited  bool // true only for the call that applied the credit
	Balance   *int64
}

// PaymentUseCase buys credits through the external gateway
type PaymentUseCase interface {
	// Initialize opens a checkout and records a pending purchase
	//
	// Possible errors:
	// - ErrInvalidAmount: If credits are outside the purchase bounds
	// - UpstreamGatewayError: If the gateway cannot be reached
	Initialize(ctx context.Context, userID string, credits int64) (*CheckoutSession, error)

	// Verify reconciles a reference on behalf of its owner
	//
	// Possible errors:
	// - ErrTransactionNotFound: Also returned when the caller does not own it
	// - UpstreamGatewayError: The reference stays pending and can be retried
	Verify(ctx context.Context, userID, reference string) (*PaymentOutcome, error)

	// HandleCallback reconciles a reference reported by the gateway
	HandleCallback(ctx context.Context, reference string) (*PaymentOutcome, error)
}
