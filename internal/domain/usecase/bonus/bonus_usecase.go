package bonus

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

// BonusUseCase guards the welcome bonus. The claim row keyed on the messaging
// identity is inserted in the same database transaction as the credit, so the
// unique index is the single arbiter between racing claims.
type BonusUseCase struct {
	uow          persistence.UnitOfWork
	ledger       usecase.LedgerUseCase
	amount       int64
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder
}

// NewBonusUseCase creates a new bonus use case instance. A non-positive
// amount selects entity.DefaultWelcomeBonus.
func NewBonusUseCase(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	amount int64,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
) usecase.BonusUseCase {
	if amount <= 0 {
		amount = entity.DefaultWelcomeBonus
	}
	return &BonusUseCase{
		uow:          uow,
		ledger:       ledger,
		amount:       amount,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

// Claim binds messagingID to the user and pays the bonus on the first claim
// ever made with that identity
func (b *BonusUseCase) Claim(ctx context.Context, userID string, messagingID int64) (*usecase.BonusClaimResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if err := entity.ValidateMessagingID(messagingID); err != nil {
		return nil, err
	}

	holder, err := b.uow.Users(ctx).GetByMessagingID(ctx, messagingID)
	switch {
	case err == nil && holder.ID != userID:
		b.metrics.BonusClaim("bound")
		b.logger.Warn("Messaging identity already bound to another account", map[string]any{
			"userId":      userID,
			"messagingId": messagingID,
		})
		return nil, errs.ErrMessagingIdentityBound
	case err != nil && !errors.Is(err, errs.ErrUserNotFound):
		return nil, err
	}

	// Read outside the transaction; Insert below decides
	alreadyClaimed, err := b.uow.WelcomeBonuses(ctx).Exists(ctx, messagingID)
	if err != nil {
		return nil, err
	}

	var result *usecase.BonusClaimResult
	err = b.uow.Do(ctx, func(txCtx context.Context) error {
		if err := b.uow.Users(txCtx).BindMessagingID(txCtx, userID, messagingID); err != nil {
			return err
		}

		if !alreadyClaimed {
			inserted, err := b.uow.WelcomeBonuses(txCtx).Insert(txCtx, &entity.WelcomeBonusClaim{
				MessagingID: messagingID,
				UserID:      userID,
				Amount:      b.amount,
				ClaimedAt:   b.timeProvider.Now(),
			})
			if err != nil {
				return err
			}
			if inserted {
				credit, err := b.ledger.CreditOnce(txCtx, usecase.CreditRequest{
					Reference: entity.BonusReference(messagingID),
					UserID:    userID,
					Kind:      entity.KindBonus,
					Amount:    b.amount,
					Reason:    "welcome bonus",
					Metadata:  map[string]any{"messagingId": messagingID},
				})
				if err != nil {
					return err
				}
				if credit.Applied {
					result = &usecase.BonusClaimResult{BonusAwarded: true, BonusAmount: b.amount, Balance: credit.Balance}
					return nil
				}
			}
		}

		user, err := b.uow.Users(txCtx).GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		result = &usecase.BonusClaimResult{BonusAwarded: false, Balance: user.Balance()}
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrMessagingIdentityBound) {
			b.metrics.BonusClaim("bound")
		} else {
			b.metrics.BonusClaim("error")
		}
		fields := errs.LogFields(err)
		fields["userId"] = userID
		fields["messagingId"] = messagingID
		b.logger.Error("Welcome bonus claim failed", fields)
		return nil, err
	}

	if result.BonusAwarded {
		b.metrics.BonusClaim("awarded")
	} else {
		b.metrics.BonusClaim("already_claimed")
	}
	b.logger.Info("Messaging identity bound", map[string]any{
		"userId":       userID,
		"messagingId":  messagingID,
		"bonusAwarded": result.BonusAwarded,
		"balance":      result.Balance,
	})
	return result, nil
}
