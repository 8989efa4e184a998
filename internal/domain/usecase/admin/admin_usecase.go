package admin

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
)

// SystemActor is the admin ID used for grants issued from the command line
const SystemActor = entity.SystemActorID

// AdminUseCase implements operator-only operations
type AdminUseCase struct {
	uow          persistence.UnitOfWork
	ledger       usecase.LedgerUseCase
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAdminUseCase creates a new admin use case instance
func NewAdminUseCase(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AdminUseCase {
	return &AdminUseCase{
		uow:          uow,
		ledger:       ledger,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Grant credits the user registered under email. Each grant gets its own
// synthetic reference so it appears exactly once in the ledger.
func (a *AdminUseCase) Grant(ctx context.Context, adminID, email string, amount int64, reason string) (*usecase.GrantResult, error) {
	if err := a.authorize(ctx, adminID); err != nil {
		return nil, err
	}
	if err := entity.ValidateCreditAmount(amount); err != nil {
		return nil, err
	}

	user, err := a.uow.Users(ctx).GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(reason) == "" {
		reason = "admin grant"
	}
	reference := "grant:" + a.ids.NewID()
	credit, err := a.ledger.CreditOnce(ctx, usecase.CreditRequest{
		Reference: reference,
		UserID:    user.ID,
		Kind:      entity.KindGrant,
		Amount:    amount,
		Reason:    reason,
		Metadata:  map[string]any{"adminId": adminID},
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("Credits granted", map[string]any{
		"adminId":   adminID,
		"userId":    user.ID,
		"reference": reference,
		"amount":    amount,
	})
	return &usecase.GrantResult{
		UserID:    user.ID,
		Reference: reference,
		Amount:    amount,
		Balance:   credit.Balance,
	}, nil
}

// Stats returns aggregate counts
func (a *AdminUseCase) Stats(ctx context.Context) (*usecase.Stats, error) {
	users, err := a.uow.Users(ctx).Count(ctx)
	if err != nil {
		return nil, err
	}
	links, active, err := a.uow.Links(ctx).Count(ctx, a.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	totals, err := a.uow.Transactions(ctx).PurchaseTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &usecase.Stats{
		Users:       users,
		Links:       links,
		ActiveLinks: active,
		Purchases:   totals.Purchases,
		CreditsSold: totals.CreditsSold,
	}, nil
}

func (a *AdminUseCase) authorize(ctx context.Context, adminID string) error {
	if adminID == SystemActor {
		return nil
	}
	actor, err := a.uow.Users(ctx).GetByID(ctx, adminID)
	if err != nil {
		return errs.ErrForbidden
	}
	if !actor.IsAdmin() {
		a.logger.Warn("Non-admin attempted grant", map[string]any{"userId": adminID})
		return errs.ErrForbidden
	}
	return nil
}
