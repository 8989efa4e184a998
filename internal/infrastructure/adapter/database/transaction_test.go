package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	domainErr "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, db *TestDB, id string, balance int64) {
	t.Helper()
	user, err := entity.NewUser(id, id+"@example.com", "", entity.RoleUser, db.TimeProvider)
	require.NoError(t, err)
	user.SetBalance(balance)
	require.NoError(t, db.UnitOfWork.Users(context.Background()).Create(context.Background(), user))
}

func balanceOf(t *testing.T, db *TestDB, id string) int64 {
	t.Helper()
	user, err := db.UnitOfWork.Users(context.Background()).GetByID(context.Background(), id)
	require.NoError(t, err)
	return user.Balance()
}

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestUnitOfWork_Do(t *testing.T) {
	ctx := context.Background()
	clock := timeprovider.NewFixedTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("commits when fn succeeds", func(t *testing.T) {
		db := NewTestDB(t, clock)
		seedUser(t, db, "u-1", 1000)

		err := db.UnitOfWork.Do(ctx, func(txCtx context.Context) error {
			_, err := db.UnitOfWork.Users(txCtx).DebitBalance(txCtx, "u-1", 400)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, int64(600), balanceOf(t, db, "u-1"))
	})

	t.Run("rolls back every write when fn fails", func(t *testing.T) {
		db := NewTestDB(t, clock)
		seedUser(t, db, "u-1", 1000)
		boom := errors.New("boom")

		err := db.UnitOfWork.Do(ctx, func(txCtx context.Context) error {
			if _, err := db.UnitOfWork.Users(txCtx).DebitBalance(txCtx, "u-1", 400); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, int64(1000), balanceOf(t, db, "u-1"))
	})

	t.Run("domain errors are returned unchanged", func(t *testing.T) {
		db := NewTestDB(t, clock)
		seedUser(t, db, "u-1", 10)

		err := db.UnitOfWork.Do(ctx, func(txCtx context.Context) error {
			_, err := db.UnitOfWork.Users(txCtx).DebitBalance(txCtx, "u-1", 400)
			return err
		})
		var insufficient *domainErr.InsufficientBalanceError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(10), insufficient.Available)
	})

	t.Run("nested units join the outer transaction", func(t *testing.T) {
		db := NewTestDB(t, clock)
		seedUser(t, db, "u-1", 1000)

		err := db.UnitOfWork.Do(ctx, func(outer context.Context) error {
			if err := db.UnitOfWork.Do(outer, func(inner context.Context) error {
				_, err := db.UnitOfWork.Users(inner).CreditBalance(inner, "u-1", 500)
				return err
			}); err != nil {
				return err
			}
			return errors.New("abort outer")
		})
		require.Error(t, err)
		assert.Equal(t, int64(1000), balanceOf(t, db, "u-1"), "inner work must roll back with the outer unit")
	})

	t.Run("replays the unit on a transient conflict", func(t *testing.T) {
		db := NewTestDB(t, clock)
		seedUser(t, db, "u-1", 1000)
		uow := NewUnitOfWorkWithRetry(db.DB, logger.NewNoopLogger(), clock, fastRetry())

		calls := 0
		err := uow.Do(ctx, func(txCtx context.Context) error {
			calls++
			if _, err := uow.Users(txCtx).CreditBalance(txCtx, "u-1", 100); err != nil {
				return err
			}
			if calls == 1 {
				return fmt.Errorf("%w: simulated", domainErr.ErrTransientConflict)
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, int64(1100), balanceOf(t, db, "u-1"), "the failed attempt must not leave a credit behind")
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		db := NewTestDB(t, clock)
		uow := NewUnitOfWorkWithRetry(db.DB, logger.NewNoopLogger(), clock, fastRetry())

		calls := 0
		err := uow.Do(ctx, func(context.Context) error {
			calls++
			return domainErr.ErrTransientConflict
		})
		assert.ErrorIs(t, err, domainErr.ErrTransientConflict)
		assert.Equal(t, 3, calls)
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		db := NewTestDB(t, clock)
		seedUser(t, db, "u-1", 1000)

		assert.Panics(t, func() {
			_ = db.UnitOfWork.Do(ctx, func(txCtx context.Context) error {
				_, _ = db.UnitOfWork.Users(txCtx).CreditBalance(txCtx, "u-1", 1)
				panic("handler bug")
			})
		})
		assert.Equal(t, int64(1000), balanceOf(t, db, "u-1"))
	})
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	db := NewTestDB(t, timeprovider.NewFixedTimeProvider(time.Now()))
	assert.Error(t, db.UnitOfWork.Commit(context.Background()))
	assert.Error(t, db.UnitOfWork.Rollback(context.Background()))
}

func TestManager_Ping(t *testing.T) {
	db := NewTestDB(t, timeprovider.NewFixedTimeProvider(time.Now()))
	require.NoError(t, db.Manager.Ping(context.Background()))

	idle := NewManager(DefaultConfig(), logger.NewNoopLogger(), db.TimeProvider, nil)
	assert.ErrorIs(t, idle.Ping(context.Background()), domainErr.ErrDatabaseConnection)
}
