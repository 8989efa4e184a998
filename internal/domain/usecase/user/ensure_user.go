package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
)

// EnsureUser returns the account for an authenticated identity, creating it
// the first time the identity is seen
func (u *UserUseCase) EnsureUser(ctx context.Context, identity entity.Identity) (*entity.User, error) {
	subject := strings.TrimSpace(identity.Subject)
	if subject == "" || subject == entity.SystemActorID {
		return nil, errs.ErrUnauthorized
	}

	users := u.uow.Users(ctx)
	role := u.roleFor(identity.Email)

	user, err := users.GetByID(ctx, identity.Subject)
	if err == nil {
		if user.Role != role {
			if err := users.UpdateRole(ctx, user.ID, role); err != nil {
				return nil, err
			}
			u.logger.Info("User role changed", map[string]any{
				"userId": user.ID,
				"from":   user.Role,
				"to":     role,
			})
			user.Role = role
		}
		return user, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	user, err = entity.NewUser(identity.Subject, identity.Email, identity.Username, role, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := users.Create(ctx, user); err != nil {
		// Two first requests raced and the other one created the row, or
		// the email belongs to a different subject
		if errors.Is(err, errs.ErrDuplicateUser) {
			existing, getErr := users.GetByID(ctx, identity.Subject)
			if errors.Is(getErr, errs.ErrUserNotFound) {
				u.logger.Warn("Email already registered to another account", map[string]any{
					"userId": identity.Subject,
					"email":  user.Email,
				})
				return nil, errs.ErrEmailInUse
			}
			return existing, getErr
		}
		u.logger.Error("Failed to create user", map[string]any{
			"userId": identity.Subject,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId": user.ID,
		"role":   user.Role,
	})
	return user, nil
}
