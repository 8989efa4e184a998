package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const (
	// SignatureHeader carries the gateway's HMAC of a callback body
	SignatureHeader = "X-Paystack-Signature"

	maxCallbackBytes = 64 << 10
)

// SignatureVerifier authenticates gateway callbacks
type SignatureVerifier interface {
	VerifySignature(body []byte, signature string) bool
}

// TransactionHandler handles purchases and ledger history
type TransactionHandler struct {
	paymentUseCase usecase.PaymentUseCase
	userUseCase    usecase.UserUseCase
	signatures     SignatureVerifier
	logger         coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	paymentUseCase usecase.PaymentUseCase,
	userUseCase usecase.UserUseCase,
	signatures SignatureVerifier,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		paymentUseCase: paymentUseCase,
		userUseCase:    userUseCase,
		signatures:     signatures,
		logger:         logger,
	}
}

// List handles GET /api/v1/transactions?page=&limit=&status=
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}

	page, err := h.userUseCase.Transactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(page))
}

func parseTransactionFilter(c *gin.Context) (persistence.TransactionFilter, error) {
	var filter persistence.TransactionFilter
	verr := &errs.ValidationError{}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add("page", "must be a positive integer")
		}
		filter.Page = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add("limit", "must be a positive integer")
		}
		filter.Limit = n
	}
	if raw := c.Query("status"); raw != "" {
		status, err := entity.ParseTransactionStatus(raw)
		if err != nil {
			verr.Add("status", "must be pending, success or failed")
		} else {
			filter.Status = &status
		}
	}
	return filter, verr.OrNil()
}

// InitializePayment handles POST /api/v1/payments/initialize
func (h *TransactionHandler) InitializePayment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	session, err := h.paymentUseCase.Initialize(c.Request.Context(), userID, req.Credits)
	if err != nil {
		respondError(c, h.logger, "initialize_payment", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCheckoutResponse(session))
}

// VerifyPayment handles POST /api/v1/payments/verify
func (h *TransactionHandler) VerifyPayment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	outcome, err := h.paymentUseCase.Verify(c.Request.Context(), userID, req.Reference)
	if err != nil {
		respondError(c, h.logger, "verify_payment", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentOutcomeResponse(outcome))
}

// PaymentCallback handles POST /api/v1/payments/callback. The body is only
// trusted for its reference; the outcome always comes from the gateway.
func (h *TransactionHandler) PaymentCallback(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBytes+1))
	if err != nil || len(body) > maxCallbackBytes {
		badRequest(c, "Unreadable callback body")
		return
	}

	if !h.signatures.VerifySignature(body, c.GetHeader(SignatureHeader)) {
		h.logger.Warn("Payment callback with invalid signature", map[string]any{
			"client_ip": c.ClientIP(),
		})
		c.JSON(http.StatusUnauthorized, NewErrorResponse(errs.ErrUnauthorized))
		return
	}

	var event dto.CallbackEvent
	if err := json.Unmarshal(body, &event); err != nil || event.Data.Reference == "" {
		badRequest(c, "Callback carries no reference")
		return
	}

	outcome, err := h.paymentUseCase.HandleCallback(c.Request.Context(), event.Data.Reference)
	if err != nil {
		// Unknown references are acknowledged so the gateway stops retrying
		if errors.Is(err, errs.ErrTransactionNotFound) {
			h.logger.Warn("Payment callback for unknown reference", map[string]any{
				"reference": event.Data.Reference,
				"event":     event.Event,
			})
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}
		respondError(c, h.logger, "payment_callback", err)
		return
	}

	h.logger.Info("Payment callback processed", map[string]any{
		"reference": outcome.Reference,
		"event":     event.Event,
		"status":    outcome.Status,
		"credited":  outcome.Credited,
	})
	c.JSON(http.StatusOK, dto.NewPaymentOutcomeResponse(outcome))
}
