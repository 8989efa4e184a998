package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
)

const purchaseReason = "credit purchase"

// PaymentUseCase buys credits through the gateway and settles each
// reference at most once, whichever of the client or the gateway callback
// arrives first
type PaymentUseCase struct {
	uow          persistence.UnitOfWork
	ledger       usecase.LedgerUseCase
	gateway      gateway.PaymentGateway
	ids          coreport.IDGenerator
	callbackURL  string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder
}

// NewPaymentUseCase creates a new payment use case instance
func NewPaymentUseCase(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	paymentGateway gateway.PaymentGateway,
	ids coreport.IDGenerator,
	callbackURL string,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
) usecase.PaymentUseCase {
	return &PaymentUseCase{
		uow:          uow,
		ledger:       ledger,
		gateway:      paymentGateway,
		ids:          ids,
		callbackURL:  callbackURL,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

// Initialize records a pending purchase and opens a checkout for it. The
// row exists before the gateway knows the reference, so a callback can
// never arrive for an unknown reference.
func (p *PaymentUseCase) Initialize(ctx context.Context, userID string, credits int64) (*usecase.CheckoutSession, error) {
	if err := entity.ValidatePurchaseAmount(credits); err != nil {
		return nil, err
	}
	amountMinor, err := entity.CreditsToMinorUnits(credits)
	if err != nil {
		return nil, err
	}

	user, err := p.uow.Users(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	reference := p.ids.NewID()
	record, err := entity.NewTransaction(reference, userID, entity.KindPurchase, credits, purchaseReason,
		p.timeProvider, entity.WithMetadata(map[string]any{"amountMinor": amountMinor}))
	if err != nil {
		return nil, err
	}
	if err := p.uow.Transactions(ctx).Create(ctx, record); err != nil {
		return nil, err
	}

	checkout, err := p.gateway.Initialize(ctx, gateway.InitializeRequest{
		Reference:   reference,
		Email:       user.Email,
		AmountMinor: amountMinor,
		CallbackURL: p.callbackURL,
		Metadata: map[string]any{
			"userId":  userID,
			"credits": credits,
		},
	})
	if err != nil {
		if _, markErr := p.uow.Transactions(ctx).TransitionStatus(ctx, reference, entity.StatusFailed, p.timeProvider.Now()); markErr != nil {
			p.logger.Error("Failed to mark abandoned purchase", map[string]any{
				"reference": reference,
				"error":     markErr.Error(),
			})
		}
		upstream := errs.NewUpstreamGatewayError("initialize", reference, err)
		p.logger.Error("Payment initialization failed", errs.LogFields(upstream))
		return nil, upstream
	}

	p.logger.Info("Payment initialized", map[string]any{
		"reference":   reference,
		"userId":      userID,
		"credits":     credits,
		"amountMinor": amountMinor,
	})
	return &usecase.CheckoutSession{
		Reference:        reference,
		AuthorizationURL: checkout.AuthorizationURL,
		AccessCode:       checkout.AccessCode,
		Credits:          credits,
		AmountMinor:      amountMinor,
	}, nil
}

// Verify reconciles a reference for its owner
func (p *PaymentUseCase) Verify(ctx context.Context, userID, reference string) (*usecase.PaymentOutcome, error) {
	record, err := p.load(ctx, reference)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, errs.ErrTransactionNotFound
	}
	return p.reconcile(ctx, usecase.SourceClient, record)
}

// HandleCallback reconciles a reference reported by the gateway
func (p *PaymentUseCase) HandleCallback(ctx context.Context, reference string) (*usecase.PaymentOutcome, error) {
	record, err := p.load(ctx, reference)
	if err != nil {
		return nil, err
	}
	return p.reconcile(ctx, usecase.SourceCallback, record)
}

func (p *PaymentUseCase) load(ctx context.Context, reference string) (*entity.Transaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}
	record, err := p.uow.Transactions(ctx).GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	// Only purchases are settled through the gateway
	if record.Kind != entity.KindPurchase {
		return nil, errs.ErrTransactionNotFound
	}
	return record, nil
}

// reconcile asks the gateway for the authoritative status and applies it.
// Terminal references are answered from the ledger without a gateway call.
func (p *PaymentUseCase) reconcile(ctx context.Context, source usecase.PaymentSource, record *entity.Transaction) (*usecase.PaymentOutcome, error) {
	outcome := &usecase.PaymentOutcome{
		Reference: record.Reference,
		Status:    record.Status,
		Credits:   record.Amount,
	}
	if record.Status.IsTerminal() {
		p.metrics.PaymentVerification(string(source), "already_settled")
		return outcome, nil
	}

	verified, err := p.gateway.Verify(ctx, record.Reference)
	if err != nil {
		p.metrics.PaymentVerification(string(source), "upstream_error")
		upstream := errs.NewUpstreamGatewayError("verify", record.Reference, err)
		p.logger.Error("Payment verification failed", errs.LogFields(upstream))
		return nil, upstream
	}

	switch verified.Status {
	case gateway.PaymentSuccess:
		expectedMinor, err := entity.CreditsToMinorUnits(record.Amount)
		if err != nil {
			return nil, err
		}
		if verified.AmountMinor < expectedMinor {
			p.logger.Error("Gateway amount below purchase amount", map[string]any{
				"reference":     record.Reference,
				"expectedMinor": expectedMinor,
				"paidMinor":     verified.AmountMinor,
			})
			p.metrics.PaymentVerification(string(source), "amount_mismatch")
			return p.markFailed(ctx, outcome)
		}

		credit, err := p.ledger.CreditOnce(ctx, usecase.CreditRequest{
			Reference: record.Reference,
			UserID:    record.UserID,
			Kind:      entity.KindPurchase,
			Amount:    record.Amount,
			Reason:    purchaseReason,
		})
		if err != nil {
			return nil, err
		}
		outcome.Status = credit.Status
		outcome.Credited = credit.Applied
		if credit.Applied {
			balance := credit.Balance
			outcome.Balance = &balance
			p.metrics.PaymentVerification(string(source), "credited")
		} else {
			p.metrics.PaymentVerification(string(source), "already_settled")
		}
		p.logger.Info("Payment reconciled", map[string]any{
			"reference": record.Reference,
			"source":    source,
			"status":    outcome.Status,
			"credited":  outcome.Credited,
		})
		return outcome, nil

	case gateway.PaymentFailed, gateway.PaymentAbandoned:
		p.metrics.PaymentVerification(string(source), "failed")
		return p.markFailed(ctx, outcome)

	case gateway.PaymentPending:
		p.metrics.PaymentVerification(string(source), "pending")
		return outcome, nil
	}

	p.metrics.PaymentVerification(string(source), "upstream_error")
	return nil, errs.NewUpstreamGatewayError("verify", record.Reference,
		fmt.Errorf("unexpected gateway status %q", verified.Status))
}

func (p *PaymentUseCase) markFailed(ctx context.Context, outcome *usecase.PaymentOutcome) (*usecase.PaymentOutcome, error) {
	txRepo := p.uow.Transactions(ctx)
	moved, err := txRepo.TransitionStatus(ctx, outcome.Reference, entity.StatusFailed, p.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	if moved {
		outcome.Status = entity.StatusFailed
		p.logger.Info("Payment marked failed", map[string]any{"reference": outcome.Reference})
		return outcome, nil
	}

	// Settled concurrently; report what won
	current, err := txRepo.GetByReference(ctx, outcome.Reference)
	if err != nil {
		return nil, err
	}
	outcome.Status = current.Status
	return outcome, nil
}
