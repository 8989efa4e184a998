package user

import (
	"context"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
)

// SetNotifications stores the notification preference. Delivery is handled
// elsewhere; this only records the flag.
func (u *UserUseCase) SetNotifications(ctx context.Context, userID string, enabled bool) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	users := u.uow.Users(ctx)
	if err := users.SetNotifications(ctx, userID, enabled); err != nil {
		return nil, err
	}

	u.logger.Info("Notification preference changed", map[string]any{
		"userId":  userID,
		"enabled": enabled,
	})
	return users.GetByID(ctx, userID)
}
