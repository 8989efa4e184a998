package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:                   userModel.ID,
		Email:                userModel.Email,
		Username:             userModel.Username,
		Role:                 entity.Role(userModel.Role),
		MessagingID:          userModel.MessagingID,
		NotificationsEnabled: userModel.NotificationsEnabled,
		CreatedAt:            userModel.CreatedAt,
		UpdatedAt:            userModel.UpdatedAt,
	}
	user.SetBalance(userModel.Balance)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_id":   userID,
			"operation": operation,
		})
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("User row contended by another transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrTransientConflict, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

func (r *UserRepository) first(ctx context.Context, operation, logID string, query any, args ...any) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where(query, args...).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError(operation, result.Error, logID)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})
	return r.first(ctx, "getting user", id, "id = ?", id)
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "getting user by email", "", "email = ?", entity.NormalizeEmail(email))
}

// GetByMessagingID retrieves the user holding a messaging identity
func (r *UserRepository) GetByMessagingID(ctx context.Context, messagingID int64) (*entity.User, error) {
	return r.first(ctx, "getting user by messaging id", "", "messaging_id = ?", messagingID)
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id": user.ID,
		"role":    user.Role,
	})

	userModel := model.User{
		ID:                   user.ID,
		Email:                entity.NormalizeEmail(user.Email),
		Username:             user.Username,
		Role:                 string(user.Role),
		Balance:              user.Balance(),
		MessagingID:          user.MessagingID,
		NotificationsEnabled: user.NotificationsEnabled,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return nil
}

// UpdateRole changes the user's role
func (r *UserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	return r.updateColumns(ctx, "updating role", id, map[string]any{"role": string(role)})
}

// SetNotifications toggles the notification preference
func (r *UserRepository) SetNotifications(ctx context.Context, id string, enabled bool) error {
	return r.updateColumns(ctx, "updating notifications", id, map[string]any{"notifications_enabled": enabled})
}

func (r *UserRepository) updateColumns(ctx context.Context, operation, id string, columns map[string]any) error {
	columns["updated_at"] = r.timeProvider.Now()
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return r.handleDatabaseError(operation, result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// DebitBalance subtracts amount in one conditional UPDATE. The WHERE clause
// carries the sufficiency check, so two concurrent debits can never both
// pass against the same balance.
func (r *UserRepository) DebitBalance(ctx context.Context, id string, amount int64) (int64, error) {
	r.logger.Debug("Debiting balance", map[string]any{
		"user_id": id,
		"amount":  amount,
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND balance >= ?", id, amount).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("debiting balance", result.Error, id)
	}

	if result.RowsAffected == 0 {
		current, err := r.readBalance(ctx, id)
		if err != nil {
			return 0, err
		}
		r.logger.Warn("Insufficient balance for debit", map[string]any{
			"user_id":   id,
			"required":  amount,
			"available": current,
		})
		return 0, errs.NewInsufficientBalanceError(id, amount, current)
	}

	return r.readBalance(ctx, id)
}

// CreditBalance adds amount in one UPDATE
func (r *UserRepository) CreditBalance(ctx context.Context, id string, amount int64) (int64, error) {
	r.logger.Debug("Crediting balance", map[string]any{
		"user_id": id,
		"amount":  amount,
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("crediting balance", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return 0, errs.ErrUserNotFound
	}

	return r.readBalance(ctx, id)
}

func (r *UserRepository) readBalance(ctx context.Context, id string) (int64, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Select("balance").Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		return 0, r.handleDatabaseError("reading balance", result.Error, id)
	}
	return userModel.Balance, nil
}

// BindMessagingID binds the identity unless another user already holds it.
// The NOT EXISTS guard keeps the common conflict out of the unique index so
// an enclosing PostgreSQL transaction is not aborted; the index still
// settles a race between two binders.
func (r *UserRepository) BindMessagingID(ctx context.Context, id string, messagingID int64) error {
	r.logger.Debug("Binding messaging identity", map[string]any{
		"user_id":      id,
		"messaging_id": messagingID,
	})

	holders := r.db.Model(&model.User{}).
		Select("1").
		Where("messaging_id = ? AND id <> ?", messagingID, id)

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND NOT EXISTS (?)", id, holders).
		Updates(map[string]any{
			"messaging_id":          messagingID,
			"notifications_enabled": true,
			"updated_at":            r.timeProvider.Now(),
		})
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrMessagingIdentityBound
		}
		return r.handleDatabaseError("binding messaging identity", result.Error, id)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return errs.ErrMessagingIdentityBound
	}
	return nil
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting users", err, "")
	}
	return count, nil
}
