package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
)

// Metric outcomes
const (
	outcomeSuccess      = "success"
	outcomeInsufficient = "insufficient"
	outcomeDuplicate    = "duplicate"
	outcomeError        = "error"
)

// LedgerUseCase moves balances with single conditional statements so no
// read-modify-write window exists between concurrent requests
type LedgerUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder
}

// NewLedgerUseCase creates a new ledger use case instance
func NewLedgerUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
) usecase.LedgerUseCase {
	return &LedgerUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

// Debit subtracts amount if and only if the current balance covers it
func (l *LedgerUseCase) Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	if err := validateMovement(userID, amount); err != nil {
		return 0, err
	}

	balance, err := l.uow.Users(ctx).DebitBalance(ctx, userID, amount)
	if err != nil {
		outcome := outcomeError
		if errs.IsInsufficientBalanceError(err) {
			outcome = outcomeInsufficient
		}
		l.metrics.LedgerOperation("debit", outcome, amount)

		fields := errs.LogFields(err)
		fields["userId"] = userID
		fields["reason"] = reason
		l.logger.Warn("Debit rejected", fields)
		return 0, err
	}

	l.metrics.LedgerOperation("debit", outcomeSuccess, amount)
	l.logger.Info("Balance debited", map[string]any{
		"userId":     userID,
		"amount":     amount,
		"reason":     reason,
		"newBalance": balance,
	})
	return balance, nil
}

// Credit adds amount unconditionally
func (l *LedgerUseCase) Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	if err := validateMovement(userID, amount); err != nil {
		return 0, err
	}

	balance, err := l.uow.Users(ctx).CreditBalance(ctx, userID, amount)
	if err != nil {
		l.metrics.LedgerOperation("credit", outcomeError, amount)
		l.logger.Error("Failed to credit balance", map[string]any{
			"userId": userID,
			"amount": amount,
			"reason": reason,
			"error":  err.Error(),
		})
		return 0, err
	}

	l.metrics.LedgerOperation("credit", outcomeSuccess, amount)
	l.logger.Info("Balance credited", map[string]any{
		"userId":     userID,
		"amount":     amount,
		"reason":     reason,
		"newBalance": balance,
	})
	return balance, nil
}

// CreditOnce settles req.Reference exactly once. The status transition and
// the balance change commit together or not at all.
func (l *LedgerUseCase) CreditOnce(ctx context.Context, req usecase.CreditRequest) (*usecase.CreditOnceResult, error) {
	if strings.TrimSpace(req.Reference) == "" {
		return nil, errs.ErrInvalidReference
	}
	if err := validateMovement(req.UserID, req.Amount); err != nil {
		return nil, err
	}

	var result *usecase.CreditOnceResult
	err := l.uow.Do(ctx, func(txCtx context.Context) error {
		txRepo := l.uow.Transactions(txCtx)

		moved, err := txRepo.TransitionStatus(txCtx, req.Reference, entity.StatusSuccess, l.timeProvider.Now())
		switch {
		case errors.Is(err, errs.ErrTransactionNotFound):
			// No pending row: this is an internal credit keyed on a synthetic reference
			record, err := entity.NewTransaction(req.Reference, req.UserID, req.Kind, req.Amount, req.Reason,
				l.timeProvider, entity.WithStatus(entity.StatusSuccess), entity.WithMetadata(req.Metadata))
			if err != nil {
				return err
			}
			if err := txRepo.Create(txCtx, record); err != nil {
				if errs.IsDuplicateTransactionError(err) {
					result, err = recordedOutcome(txCtx, txRepo, req.Reference)
					return err
				}
				return err
			}
		case err != nil:
			return err
		case !moved:
			result, err = recordedOutcome(txCtx, txRepo, req.Reference)
			return err
		}

		balance, err := l.uow.Users(txCtx).CreditBalance(txCtx, req.UserID, req.Amount)
		if err != nil {
			return err
		}
		result = &usecase.CreditOnceResult{Applied: true, Status: entity.StatusSuccess, Balance: balance}
		return nil
	})
	if err != nil {
		l.metrics.LedgerOperation("credit_once", outcomeError, req.Amount)
		l.logger.Error("Failed to settle credit", map[string]any{
			"reference": req.Reference,
			"userId":    req.UserID,
			"amount":    req.Amount,
			"error":     err.Error(),
		})
		return nil, err
	}

	if !result.Applied {
		l.metrics.LedgerOperation("credit_once", outcomeDuplicate, req.Amount)
		l.logger.Info("Credit already settled", map[string]any{
			"reference": req.Reference,
			"status":    result.Status,
		})
		return result, nil
	}

	l.metrics.LedgerOperation("credit_once", outcomeSuccess, req.Amount)
	l.logger.Info("Balance credited once", map[string]any{
		"reference":  req.Reference,
		"userId":     req.UserID,
		"kind":       req.Kind,
		"amount":     req.Amount,
		"newBalance": result.Balance,
	})
	return result, nil
}

func recordedOutcome(ctx context.Context, repo persistence.TransactionRepository, reference string) (*usecase.CreditOnceResult, error) {
	existing, err := repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return &usecase.CreditOnceResult{Applied: false, Status: existing.Status}, nil
}

func validateMovement(userID string, amount int64) error {
	if strings.TrimSpace(userID) == "" {
		return errs.ErrInvalidUserID
	}
	return entity.ValidateCreditAmount(amount)
}
