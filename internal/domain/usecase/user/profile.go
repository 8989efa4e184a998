package user

import (
	"context"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
)

// Profile returns the user with current balance and messaging binding
func (u *UserUseCase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.uow.Users(ctx).GetByID(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to get user", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	return user, nil
}

// Transactions returns one page of the user's ledger history, newest first
func (u *UserUseCase) Transactions(ctx context.Context, userID string, filter persistence.TransactionFilter) (*usecase.TransactionPage, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	filter = normalizeFilter(filter)
	items, total, err := u.uow.Transactions(ctx).ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return &usecase.TransactionPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func normalizeFilter(filter persistence.TransactionFilter) persistence.TransactionFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.Limit < 1:
		filter.Limit = DefaultPageLimit
	case filter.Limit > MaxPageLimit:
		filter.Limit = MaxPageLimit
	}
	return filter
}
