package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/domain/usecase/bonus"
	"github.com/amirhossein-jamali/linkledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/linkledger/internal/domain/usecase/link"
	"github.com/amirhossein-jamali/linkledger/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/linkledger/internal/domain/usecase/pricing"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/metrics"
	timeprovider "github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/time"
	gatewaymocks "github.com/amirhossein-jamali/linkledger/mocks/port/gateway"
)

var flowEpoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// sequentialIDs hands out predictable record ids and a public id that can be
// pinned to force collisions
type sequentialIDs struct {
	n        int
	publicID string
}

func (s *sequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%04d", s.n)
}

func (s *sequentialIDs) NewPublicID() string {
	if s.publicID != "" {
		return s.publicID
	}
	return fmt.Sprintf("pub-%04d", s.n)
}

type flow struct {
	db      *database.TestDB
	clock   *timeprovider.FixedTimeProvider
	ids     *sequentialIDs
	ledger  usecase.LedgerUseCase
	links   usecase.LinkUseCase
	bonuses usecase.BonusUseCase
}

func newFlow(t *testing.T) *flow {
	t.Helper()
	clock := timeprovider.NewFixedTimeProvider(flowEpoch)
	db := database.NewTestDB(t, clock)
	log := logger.NewNoopLogger()
	rec := metrics.NoopRecorder{}
	ids := &sequentialIDs{}

	ledgerUseCase := ledger.NewLedgerUseCase(db.UnitOfWork, clock, log, rec)
	return &flow{
		db:      db,
		clock:   clock,
		ids:     ids,
		ledger:  ledgerUseCase,
		links:   link.NewLinkUseCase(db.UnitOfWork, ledgerUseCase, pricing.DefaultTable(), ids, clock, log, rec),
		bonuses: bonus.NewBonusUseCase(db.UnitOfWork, ledgerUseCase, 2000, clock, log, rec),
	}
}

func (f *flow) payments(gw gateway.PaymentGateway) usecase.PaymentUseCase {
	return payment.NewPaymentUseCase(f.db.UnitOfWork, f.ledger, gw, f.ids, "https://linkledger.test/payments/return",
		f.clock, logger.NewNoopLogger(), metrics.NoopRecorder{})
}

func (f *flow) seedUser(t *testing.T, id string, balance int64, messagingID int64) {
	t.Helper()
	ctx := context.Background()
	user, err := entity.NewUser(id, id+"@example.com", "", entity.RoleUser, f.clock)
	require.NoError(t, err)
	user.SetBalance(balance)
	require.NoError(t, f.db.UnitOfWork.Users(ctx).Create(ctx, user))
	if messagingID > 0 {
		require.NoError(t, f.db.UnitOfWork.Users(ctx).BindMessagingID(ctx, id, messagingID))
	}
}

func (f *flow) balance(t *testing.T, id string) int64 {
	t.Helper()
	ctx := context.Background()
	user, err := f.db.UnitOfWork.Users(ctx).GetByID(ctx, id)
	require.NoError(t, err)
	return user.Balance()
}

func (f *flow) transactions(t *testing.T, id string) []*entity.Transaction {
	t.Helper()
	ctx := context.Background()
	items, _, err := f.db.UnitOfWork.Transactions(ctx).ListByUser(ctx, id, persistence.TransactionFilter{Limit: 100})
	require.NoError(t, err)
	return items
}

func (f *flow) spends(t *testing.T, id string) int {
	t.Helper()
	n := 0
	for _, tx := range f.transactions(t, id) {
		if tx.Kind == entity.KindSpend {
			n++
		}
	}
	return n
}

func (f *flow) storedLinks(t *testing.T, ownerID string) []*entity.Link {
	t.Helper()
	ctx := context.Background()
	links, err := f.db.UnitOfWork.Links(ctx).ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	return links
}

func giveaway() usecase.CreateLinkRequest {
	return usecase.CreateLinkRequest{
		Name:          "Spring giveaway",
		Duration:      "1w",
		PlatformCount: 1,
		Content: &entity.GiveawayContent{
			Title:    "Win a keyboard",
			Writeup:  "Follow and share to enter.",
			ImageURL: "https://cdn.example.com/keyboard.png",
		},
	}
}

func TestLedgerFlow_LinkPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("debits the price and stores the link with a week of life", func(t *testing.T) {
		f := newFlow(t)
		f.seedUser(t, "u-1", 5000, 101)

		result, err := f.links.Create(ctx, "u-1", giveaway())
		require.NoError(t, err)

		assert.Equal(t, int64(4000), result.Price)
		assert.Equal(t, int64(1000), result.Balance)
		assert.Equal(t, int64(1000), f.balance(t, "u-1"))
		assert.Equal(t, 1, f.spends(t, "u-1"))

		stored := f.storedLinks(t, "u-1")
		require.Len(t, stored, 1)
		assert.Equal(t, entity.LinkTypeGiveaway, stored[0].Type)
		assert.WithinDuration(t, flowEpoch.Add(7*24*time.Hour), stored[0].ExpiresAt, time.Second)
	})

	t.Run("rejects an unaffordable extension without touching anything", func(t *testing.T) {
		f := newFlow(t)
		f.seedUser(t, "u-1", 5000, 101)

		created, err := f.links.Create(ctx, "u-1", giveaway())
		require.NoError(t, err)
		linkID := created.Link.Link.ID

		f.clock.Advance(5 * 24 * time.Hour)
		_, err = f.links.Extend(ctx, linkID, "u-1", 1)
		require.Error(t, err)
		assert.True(t, errs.IsInsufficientBalanceError(err))

		assert.Equal(t, int64(1000), f.balance(t, "u-1"))
		assert.Equal(t, 1, f.spends(t, "u-1"))
		stored := f.storedLinks(t, "u-1")
		require.Len(t, stored, 1)
		assert.WithinDuration(t, flowEpoch.Add(7*24*time.Hour), stored[0].ExpiresAt, time.Second)
	})

	t.Run("stacks a paid extension on the current expiry", func(t *testing.T) {
		f := newFlow(t)
		f.seedUser(t, "u-1", 9000, 101)

		created, err := f.links.Create(ctx, "u-1", giveaway())
		require.NoError(t, err)

		f.clock.Advance(5 * 24 * time.Hour)
		extended, err := f.links.Extend(ctx, created.Link.Link.ID, "u-1", 1)
		require.NoError(t, err)

		assert.Equal(t, int64(4000), extended.Price)
		assert.Equal(t, int64(1000), f.balance(t, "u-1"))
		assert.Equal(t, 2, f.spends(t, "u-1"))
		stored := f.storedLinks(t, "u-1")
		require.Len(t, stored, 1)
		assert.WithinDuration(t, flowEpoch.Add(14*24*time.Hour), stored[0].ExpiresAt, time.Second)
	})

	t.Run("restores the balance when the link cannot be stored", func(t *testing.T) {
		f := newFlow(t)
		f.seedUser(t, "u-1", 10000, 101)
		f.ids.publicID = "taken"

		_, err := f.links.Create(ctx, "u-1", giveaway())
		require.NoError(t, err)
		require.Equal(t, int64(6000), f.balance(t, "u-1"))

		_, err = f.links.Create(ctx, "u-1", giveaway())
		require.ErrorIs(t, err, errs.ErrDuplicatePublicID)

		assert.Equal(t, int64(6000), f.balance(t, "u-1"))
		assert.Equal(t, 1, f.spends(t, "u-1"))
		assert.Len(t, f.storedLinks(t, "u-1"), 1)
	})
}

func TestLedgerFlow_PaymentSettlesOnce(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	f.seedUser(t, "u-1", 0, 0)

	pending, err := entity.NewTransaction("R1", "u-1", entity.KindPurchase, 10000, "credit purchase", f.clock)
	require.NoError(t, err)
	require.NoError(t, f.db.UnitOfWork.Transactions(ctx).Create(ctx, pending))

	gw := gatewaymocks.NewMockPaymentGateway(t)
	gw.EXPECT().Verify(ctx, "R1").Return(&gateway.VerifyResult{
		Reference:   "R1",
		Status:      gateway.PaymentSuccess,
		AmountMinor: 1_000_000,
		Currency:    "NGN",
	}, nil).Once()
	payments := f.payments(gw)

	verified, err := payments.Verify(ctx, "u-1", "R1")
	require.NoError(t, err)
	assert.True(t, verified.Credited)
	assert.Equal(t, entity.StatusSuccess, verified.Status)
	require.NotNil(t, verified.Balance)
	assert.Equal(t, int64(10000), *verified.Balance)

	replayed, err := payments.HandleCallback(ctx, "R1")
	require.NoError(t, err)
	assert.False(t, replayed.Credited)
	assert.Equal(t, entity.StatusSuccess, replayed.Status)

	assert.Equal(t, int64(10000), f.balance(t, "u-1"))
	txs := f.transactions(t, "u-1")
	require.Len(t, txs, 1)
	assert.Equal(t, entity.StatusSuccess, txs[0].Status)
}

func TestLedgerFlow_WelcomeBonusFollowsTheIdentity(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	f.seedUser(t, "u-1", 0, 0)
	f.seedUser(t, "u-2", 0, 0)

	first, err := f.bonuses.Claim(ctx, "u-1", 777)
	require.NoError(t, err)
	assert.True(t, first.BonusAwarded)
	assert.Equal(t, int64(2000), first.Balance)

	_, err = f.bonuses.Claim(ctx, "u-2", 777)
	require.ErrorIs(t, err, errs.ErrMessagingIdentityBound)
	assert.Equal(t, int64(0), f.balance(t, "u-2"))

	_, err = f.bonuses.Claim(ctx, "u-1", 888)
	require.NoError(t, err)

	second, err := f.bonuses.Claim(ctx, "u-2", 777)
	require.NoError(t, err)
	assert.False(t, second.BonusAwarded)
	assert.Equal(t, int64(0), second.Balance)
	assert.Equal(t, int64(0), f.balance(t, "u-2"))
	assert.Empty(t, f.transactions(t, "u-2"))
}
