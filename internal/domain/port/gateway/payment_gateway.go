package gateway

import (
	"context"
	"time"
)

// PaymentStatus is the gateway's authoritative view of a charge
type PaymentStatus string

const (
	PaymentSuccess   PaymentStatus = "success"
	PaymentFailed    PaymentStatus = "failed"
	PaymentAbandoned PaymentStatus = "abandoned"
	PaymentPending   PaymentStatus = "pending"
)

// InitializeRequest starts a hosted checkout
type InitializeRequest struct {
	Reference   string
	Email       string
	AmountMinor int64
	CallbackURL string
	Metadata    map[string]any
}

// InitializeResult is where the payer is sent to pay
type InitializeResult struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
}

// VerifyResult is the gateway's answer for a reference
type VerifyResult struct {
	Reference   string
	Status      PaymentStatus
	AmountMinor int64
	Currency    string
	PaidAt      *time.Time
	Metadata    map[string]any
}

// PaymentGateway is the external card processor. Implementations return an
// error for transport failures and unexpected payloads; they never map an
// unknown status to success.
type PaymentGateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
