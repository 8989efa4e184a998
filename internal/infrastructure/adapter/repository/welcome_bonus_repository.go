package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WelcomeBonusRepository implements WelcomeBonusRepository interface using GORM
type WelcomeBonusRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWelcomeBonusRepository creates a new WelcomeBonusRepository instance
func NewWelcomeBonusRepository(db *gorm.DB, logger coreport.Logger) *WelcomeBonusRepository {
	return &WelcomeBonusRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Exists reports whether the messaging identity has a recorded claim
func (r *WelcomeBonusRepository) Exists(ctx context.Context, messagingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WelcomeBonusClaim{}).
		Where("messaging_id = ?", messagingID).
		Count(&count).Error
	if err != nil {
		return false, r.wrapError("checking bonus claim", messagingID, err)
	}
	return count > 0, nil
}

// Insert records the claim, returning false when one already exists
func (r *WelcomeBonusRepository) Insert(ctx context.Context, claim *entity.WelcomeBonusClaim) (bool, error) {
	row := model.WelcomeBonusClaim{
		MessagingID: claim.MessagingID,
		UserID:      claim.UserID,
		Amount:      claim.Amount,
		ClaimedAt:   claim.ClaimedAt.UTC(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return false, r.wrapError("recording bonus claim", claim.MessagingID, result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Info("Welcome bonus already claimed", map[string]any{
			"messaging_id": claim.MessagingID,
			"user_id":      claim.UserID,
		})
		return false, nil
	}
	return true, nil
}

func (r *WelcomeBonusRepository) wrapError(operation string, messagingID int64, err error) error {
	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransientConflict, err.Error())
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"messaging_id": messagingID,
		"error":        err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
