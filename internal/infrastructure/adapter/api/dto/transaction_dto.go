package dto

import (
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
)

// TransactionResponse is one ledger history entry
type TransactionResponse struct {
	Reference   string         `json:"reference"`
	Kind        string         `json:"kind"`
	Status      string         `json:"status"`
	Amount      int64          `json:"amount"`
	Reason      string         `json:"reason,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	ProcessedAt *time.Time     `json:"processedAt,omitempty"`
}

// TransactionListResponse is one page of history
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// NewTransactionListResponse maps a transaction page
func NewTransactionListResponse(p *usecase.TransactionPage) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(p.Items))
	for _, tx := range p.Items {
		items = append(items, NewTransactionResponse(tx))
	}
	return TransactionListResponse{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}

// NewTransactionResponse maps a transaction entity
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		Reference:   tx.Reference,
		Kind:        string(tx.Kind),
		Status:      string(tx.Status),
		Amount:      tx.Amount,
		Reason:      tx.Reason,
		Metadata:    tx.Metadata,
		CreatedAt:   tx.CreatedAt,
		ProcessedAt: tx.ProcessedAt,
	}
}

// InitializePaymentRequest buys credits
type InitializePaymentRequest struct {
	Credits int64 `json:"credits" binding:"required"`
}

// CheckoutResponse sends the payer to the gateway
type CheckoutResponse struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode,omitempty"`
	Credits          int64  `json:"credits"`
	AmountMinor      int64  `json:"amountMinor"`
}

// NewCheckoutResponse maps a checkout session
func NewCheckoutResponse(s *usecase.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		Reference:        s.Reference,
		AuthorizationURL: s.AuthorizationURL,
		AccessCode:       s.AccessCode,
		Credits:          s.Credits,
		AmountMinor:      s.AmountMinor,
	}
}

// VerifyPaymentRequest asks for reconciliation of a reference
type VerifyPaymentRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// PaymentOutcomeResponse is the recorded result of a reference
type PaymentOutcomeResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Credits   int64  `json:"credits"`
	Credited  bool   `json:"credited"`
	Balance   *int64 `json:"balance,omitempty"`
}

// NewPaymentOutcomeResponse maps a payment outcome
func NewPaymentOutcomeResponse(o *usecase.PaymentOutcome) PaymentOutcomeResponse {
	return PaymentOutcomeResponse{
		Reference: o.Reference,
		Status:    string(o.Status),
		Credits:   o.Credits,
		Credited:  o.Credited,
		Balance:   o.Balance,
	}
}

// CallbackEvent is the part of a gateway callback the service reads
type CallbackEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}
