package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultMetadataJSON = "{}"

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) (model.Transaction, error) {
	metadata := datatypes.JSON(defaultMetadataJSON)
	if len(transaction.Metadata) > 0 {
		raw, err := json.Marshal(transaction.Metadata)
		if err != nil {
			return model.Transaction{}, errs.NewValidationError("metadata", err.Error())
		}
		metadata = datatypes.JSON(raw)
	}

	return model.Transaction{
		ID:          transaction.ID,
		Reference:   transaction.Reference,
		UserID:      transaction.UserID,
		Kind:        string(transaction.Kind),
		Status:      string(transaction.Status),
		Amount:      transaction.Amount,
		Reason:      transaction.Reason,
		Metadata:    metadata,
		CreatedAt:   transaction.CreatedAt,
		ProcessedAt: transaction.ProcessedAt,
	}, nil
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(row *model.Transaction) *entity.Transaction {
	transaction := &entity.Transaction{
		ID:          row.ID,
		Reference:   row.Reference,
		UserID:      row.UserID,
		Kind:        entity.TransactionKind(row.Kind),
		Status:      entity.TransactionStatus(row.Status),
		Amount:      row.Amount,
		Reason:      row.Reason,
		CreatedAt:   row.CreatedAt,
		ProcessedAt: row.ProcessedAt,
	}

	if len(row.Metadata) > 0 {
		var metadata map[string]any
		if err := json.Unmarshal(row.Metadata, &metadata); err != nil {
			r.logger.Warn("Ignoring unreadable transaction metadata", map[string]any{
				"reference": row.Reference,
				"error":     err.Error(),
			})
		} else if len(metadata) > 0 {
			transaction.Metadata = metadata
		}
	}
	return transaction
}

func (r *TransactionRepository) wrapError(operation, reference string, err error) error {
	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransientConflict, err.Error())
	}
	r.logger.Error(fmt.Sprintf("Failed to %s", operation), map[string]any{
		"reference": reference,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new transaction. The insert skips on a reference conflict
// rather than raising, so a duplicate never aborts the enclosing transaction.
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"reference": transaction.Reference,
		"user_id":   transaction.UserID,
		"kind":      transaction.Kind,
	})

	row, err := r.entityToModel(transaction)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			return errs.ErrUserNotFound
		}
		return r.wrapError("create transaction", transaction.Reference, result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Duplicate transaction detected", map[string]any{
			"reference": transaction.Reference,
			"user_id":   transaction.UserID,
		})
		return errs.NewDuplicateTransactionError(transaction.Reference, transaction.UserID)
	}

	transaction.ID = row.ID
	r.logger.Info("Transaction created successfully", map[string]any{
		"reference": transaction.Reference,
		"user_id":   transaction.UserID,
		"status":    transaction.Status,
	})
	return nil
}

// GetByReference retrieves a transaction by its unique reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var row model.Transaction
	result := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Debug("Transaction not found", map[string]any{
				"reference": reference,
			})
			return nil, errs.ErrTransactionNotFound
		}
		return nil, r.wrapError("get transaction", reference, result.Error)
	}
	return r.modelToEntity(&row), nil
}

// TransitionStatus settles a pending row. The status guard lives in the
// WHERE clause so only one of several concurrent settlers sees a changed row.
func (r *TransactionRepository) TransitionStatus(ctx context.Context, reference string, to entity.TransactionStatus, processedAt time.Time) (bool, error) {
	if !to.IsTerminal() {
		return false, errs.NewValidationError("status", fmt.Sprintf("cannot transition to %s", to))
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&model.Transaction{}).
		Where("reference = ? AND status = ?", reference, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":       string(to),
			"processed_at": processedAt,
		})
	if result.Error != nil {
		return false, r.wrapError("transition transaction", reference, result.Error)
	}
	if result.RowsAffected == 1 {
		r.logger.Debug("Transaction transitioned", map[string]any{
			"reference": reference,
			"status":    to,
		})
		return true, nil
	}

	var count int64
	if err := db.Model(&model.Transaction{}).Where("reference = ?", reference).Count(&count).Error; err != nil {
		return false, r.wrapError("check transaction", reference, err)
	}
	if count == 0 {
		return false, errs.ErrTransactionNotFound
	}
	return false, nil
}

// ListByUser returns one page of the user's transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("user_id = ?", userID)
		if filter.Status != nil {
			query = query.Where("status = ?", string(*filter.Status))
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, r.wrapError("count transactions", "", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	var rows []model.Transaction
	err := scoped().
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.wrapError("list transactions", "", err)
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}
	return transactions, total, nil
}

// PurchaseTotals sums settled purchases
func (r *TransactionRepository) PurchaseTotals(ctx context.Context) (persistence.LedgerTotals, error) {
	var totals struct {
		Purchases   int64
		CreditsSold int64
	}
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COUNT(*) AS purchases, COALESCE(SUM(amount), 0) AS credits_sold").
		Where("kind = ? AND status = ?", string(entity.KindPurchase), string(entity.StatusSuccess)).
		Scan(&totals).Error
	if err != nil {
		return persistence.LedgerTotals{}, r.wrapError("sum purchases", "", err)
	}
	return persistence.LedgerTotals{Purchases: totals.Purchases, CreditsSold: totals.CreditsSold}, nil
}
