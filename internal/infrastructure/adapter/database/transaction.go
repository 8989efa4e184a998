package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions.
// The open transaction travels in the context; repositories built from a
// transactional context run inside it.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
	retry        RetryConfig
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return NewUnitOfWorkWithRetry(db, logger, timeProvider, DefaultRetryConfig())
}

// NewUnitOfWorkWithRetry creates a UnitOfWork with a custom retry policy for Do
func NewUnitOfWorkWithRetry(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, retry RetryConfig) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
		retry:        retry,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit transaction")
	}
	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// Already finished transactions are not an error for the caller
	if err != nil && (errors.Is(err, gorm.ErrInvalidTransaction) ||
		strings.Contains(err.Error(), "already been committed or rolled back")) {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// Do runs fn in a transaction and commits when it returns nil. A context
// that already carries a transaction is reused, so nested units join the
// outer one. Transient conflicts replay the whole unit.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTransaction(ctx) {
		return fn(ctx)
	}

	return RetryOnTransientError(ctx, u.retry, func() error {
		return u.runOnce(ctx, fn)
	}, u.logger)
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(txCtx)
			panic(p)
		}
	}()

	if err = fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Warn("Rollback after failed unit of work did not complete", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}

// Users returns a user repository bound to the context's transaction
func (u *UnitOfWork) Users(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// Links returns a link repository bound to the context's transaction
func (u *UnitOfWork) Links(ctx context.Context) persistence.LinkRepository {
	return repository.NewLinkRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// Transactions returns a transaction repository bound to the context's transaction
func (u *UnitOfWork) Transactions(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// WelcomeBonuses returns a bonus claim repository bound to the context's transaction
func (u *UnitOfWork) WelcomeBonuses(ctx context.Context) persistence.WelcomeBonusRepository {
	return repository.NewWelcomeBonusRepository(u.getDbFromContext(ctx), u.logger)
}

// RateLimits returns a rate limit counter repository
func (u *UnitOfWork) RateLimits(ctx context.Context) persistence.RateLimitRepository {
	return repository.NewRateLimitRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db
}

func inTransaction(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	return ok && tx != nil
}
