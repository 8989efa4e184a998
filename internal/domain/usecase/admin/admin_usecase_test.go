package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/linkledger/mocks/port/core"
	mpers "github.com/amirhossein-jamali/linkledger/mocks/port/persistence"
	muse "github.com/amirhossein-jamali/linkledger/mocks/port/usecase"
)

type adminFixture struct {
	users   *mpers.MockUserRepository
	links   *mpers.MockLinkRepository
	txs     *mpers.MockTransactionRepository
	ledger  *muse.MockLedgerUseCase
	now     time.Time
	useCase usecase.AdminUseCase
}

func newAdminFixture(t *testing.T) *adminFixture {
	f := &adminFixture{
		users:  mpers.NewMockUserRepository(t),
		links:  mpers.NewMockLinkRepository(t),
		txs:    mpers.NewMockTransactionRepository(t),
		ledger: muse.NewMockLedgerUseCase(t),
		now:    time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	uow := mpers.NewMockUnitOfWork(t)
	uow.EXPECT().Users(mock.Anything).Return(f.users).Maybe()
	uow.EXPECT().Links(mock.Anything).Return(f.links).Maybe()
	uow.EXPECT().Transactions(mock.Anything).Return(f.txs).Maybe()

	ids := mcore.NewMockIDGenerator(t)
	ids.EXPECT().NewID().Return("g1").Maybe()

	timeProvider := mcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(f.now).Maybe()

	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	f.useCase = NewAdminUseCase(uow, f.ledger, ids, timeProvider, logger)
	return f
}

func TestAdminUseCase_Grant(t *testing.T) {
	ctx := context.Background()
	admin := &entity.User{ID: "a-1", Role: entity.RoleAdmin}
	target := &entity.User{ID: "u-1", Email: "user@example.com", Role: entity.RoleUser}

	t.Run("should credit through the ledger with a grant reference", func(t *testing.T) {
		f := newAdminFixture(t)
		f.users.EXPECT().GetByID(ctx, "a-1").Return(admin, nil).Once()
		f.users.EXPECT().GetByEmail(ctx, "user@example.com").Return(target, nil).Once()
		f.ledger.EXPECT().CreditOnce(ctx, usecase.CreditRequest{
			Reference: "grant:g1",
			UserID:    "u-1",
			Kind:      entity.KindGrant,
			Amount:    750,
			Reason:    "admin grant",
			Metadata:  map[string]any{"adminId": "a-1"},
		}).Return(&usecase.CreditOnceResult{Applied: true, Status: entity.StatusSuccess, Balance: 1750}, nil).Once()

		result, err := f.useCase.Grant(ctx, "a-1", " USER@example.com", 750, "")

		require.NoError(t, err)
		assert.Equal(t, "grant:g1", result.Reference)
		assert.Equal(t, int64(1750), result.Balance)
	})

	t.Run("should allow the system actor", func(t *testing.T) {
		f := newAdminFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "user@example.com").Return(target, nil).Once()
		f.ledger.EXPECT().CreditOnce(ctx, mock.Anything).
			Return(&usecase.CreditOnceResult{Applied: true, Balance: 10}, nil).Once()

		_, err := f.useCase.Grant(ctx, SystemActor, "user@example.com", 10, "cli")

		require.NoError(t, err)
		f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("should forbid non-admins", func(t *testing.T) {
		f := newAdminFixture(t)
		f.users.EXPECT().GetByID(ctx, "u-1").Return(target, nil).Once()

		_, err := f.useCase.Grant(ctx, "u-1", "user@example.com", 10, "")

		assert.ErrorIs(t, err, errs.ErrForbidden)
		f.ledger.AssertNotCalled(t, "CreditOnce", mock.Anything, mock.Anything)
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		f := newAdminFixture(t)
		f.users.EXPECT().GetByID(ctx, "a-1").Return(admin, nil).Once()

		_, err := f.useCase.Grant(ctx, "a-1", "user@example.com", 0, "")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should report unknown recipients", func(t *testing.T) {
		f := newAdminFixture(t)
		f.users.EXPECT().GetByID(ctx, "a-1").Return(admin, nil).Once()
		f.users.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.useCase.Grant(ctx, "a-1", "ghost@example.com", 5, "")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestAdminUseCase_Stats(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)
	f.users.EXPECT().Count(ctx).Return(int64(12), nil).Once()
	f.links.EXPECT().Count(ctx, f.now).Return(int64(30), int64(18), nil).Once()
	f.txs.EXPECT().PurchaseTotals(ctx).Return(persistence.LedgerTotals{Purchases: 7, CreditsSold: 21000}, nil).Once()

	stats, err := f.useCase.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.Stats{Users: 12, Links: 30, ActiveLinks: 18, Purchases: 7, CreditsSold: 21000}, stats)
}
