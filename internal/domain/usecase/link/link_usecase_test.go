package link

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/domain/usecase/pricing"
	coremocks "github.com/amirhossein-jamali/linkledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/linkledger/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/linkledger/mocks/port/usecase"
)

const day = 24 * time.Hour

type linkFixture struct {
	uow     *persistencemocks.MockUnitOfWork
	users   *persistencemocks.MockUserRepository
	links   *persistencemocks.MockLinkRepository
	txs     *persistencemocks.MockTransactionRepository
	ledger  *usecasemocks.MockLedgerUseCase
	ids     *coremocks.MockIDGenerator
	metrics *coremocks.MockMetricsRecorder
	logger  *coremocks.MockLogger
	now     time.Time
	useCase usecase.LinkUseCase
}

func newLinkFixture(t *testing.T) *linkFixture {
	f := &linkFixture{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		users:   persistencemocks.NewMockUserRepository(t),
		links:   persistencemocks.NewMockLinkRepository(t),
		txs:     persistencemocks.NewMockTransactionRepository(t),
		ledger:  usecasemocks.NewMockLedgerUseCase(t),
		ids:     coremocks.NewMockIDGenerator(t),
		metrics: coremocks.NewMockMetricsRecorder(t),
		logger:  coremocks.NewMockLogger(t),
		now:     time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC),
	}

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(f.now).Maybe()

	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	f.ids.EXPECT().NewID().Return("id-1").Maybe()

	f.uow.EXPECT().Users(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().Links(mock.Anything).Return(f.links).Maybe()
	f.uow.EXPECT().Transactions(mock.Anything).Return(f.txs).Maybe()
	f.uow.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()

	f.useCase = NewLinkUseCase(f.uow, f.ledger, pricing.DefaultTable(), f.ids, timeProvider, f.logger, f.metrics)
	return f
}

func boundOwner(id string) *entity.User {
	messagingID := int64(9001)
	return &entity.User{ID: id, Email: id + "@example.com", Role: entity.RoleUser, MessagingID: &messagingID}
}

func votingContent() *entity.VotingContent {
	return &entity.VotingContent{
		ContestantName: "Ada",
		Writeup:        "Vote for Ada",
		ImageURL:       "https://cdn.example.com/ada.jpg",
	}
}

func TestLinkUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("should debit, persist and record spend in one unit", func(t *testing.T) {
		// Arrange
		f := newLinkFixture(t)
		req := usecase.CreateLinkRequest{Name: "Finals", Duration: "2w", PlatformCount: 2, Content: votingContent()}
		wantPrice := int64((4000 + 2500) * 2)

		f.users.EXPECT().GetByID(ctx, "u-1").Return(boundOwner("u-1"), nil).Once()
		f.ledger.EXPECT().Debit(ctx, "u-1", wantPrice, "link:create").Return(int64(7000), nil).Once()
		f.ids.EXPECT().NewPublicID().Return("pub123").Once()
		f.links.EXPECT().Create(ctx, mock.MatchedBy(func(l *entity.Link) bool {
			return l.PublicID == "pub123" && l.OwnerID == "u-1" && l.ExpiresAt.Equal(f.now.Add(14*day))
		})).Return(nil).Once()
		f.txs.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Kind == entity.KindSpend && tx.Amount == wantPrice && tx.Status == entity.StatusSuccess
		})).Return(nil).Once()
		f.metrics.EXPECT().LinkCreated("voting", "2w").Once()

		// Act
		result, err := f.useCase.Create(ctx, "u-1", req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, wantPrice, result.Price)
		assert.Equal(t, int64(7000), result.Balance)
		assert.Equal(t, "pub123", result.Link.Link.PublicID)
		assert.False(t, result.Link.Expired)
		assert.Equal(t, 14*day, result.Link.Remaining)
	})

	t.Run("should apply fallback multiplier to durations outside the table", func(t *testing.T) {
		f := newLinkFixture(t)
		req := usecase.CreateLinkRequest{Name: "Odd", Duration: "3", PlatformCount: 1, Content: votingContent()}

		f.metrics.EXPECT().UnknownDurationPriced("3w").Once()
		f.users.EXPECT().GetByID(ctx, "u-1").Return(boundOwner("u-1"), nil).Once()
		f.ledger.EXPECT().Debit(ctx, "u-1", int64(4000), "link:create").Return(int64(0), nil).Once()
		f.ids.EXPECT().NewPublicID().Return("pub").Once()
		f.links.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.txs.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.metrics.EXPECT().LinkCreated("voting", "3w").Once()

		result, err := f.useCase.Create(ctx, "u-1", req)

		require.NoError(t, err)
		assert.Equal(t, int64(4000), result.Price)
		assert.Equal(t, f.now.Add(21*day), result.Link.Link.ExpiresAt)
	})

	t.Run("should require a bound messaging identity", func(t *testing.T) {
		f := newLinkFixture(t)
		owner := boundOwner("u-1")
		owner.MessagingID = nil
		f.users.EXPECT().GetByID(ctx, "u-1").Return(owner, nil).Once()

		_, err := f.useCase.Create(ctx, "u-1", usecase.CreateLinkRequest{
			Name: "x", Duration: "1", PlatformCount: 1, Content: votingContent(),
		})

		assert.ErrorIs(t, err, errs.ErrMessagingIdentityRequired)
		f.ledger.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should persist nothing when balance is insufficient", func(t *testing.T) {
		f := newLinkFixture(t)
		f.users.EXPECT().GetByID(ctx, "u-1").Return(boundOwner("u-1"), nil).Once()
		f.ledger.EXPECT().Debit(ctx, "u-1", int64(4000), "link:create").
			Return(int64(0), errs.NewInsufficientBalanceError("u-1", 4000, 3999)).Once()

		_, err := f.useCase.Create(ctx, "u-1", usecase.CreateLinkRequest{
			Name: "x", Duration: "1w", PlatformCount: 1, Content: votingContent(),
		})

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		f.links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.txs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should retry a public identifier collision", func(t *testing.T) {
		f := newLinkFixture(t)
		f.users.EXPECT().GetByID(ctx, "u-1").Return(boundOwner("u-1"), nil).Once()
		f.ledger.EXPECT().Debit(ctx, "u-1", int64(2000), "link:create").Return(int64(100), nil).Once()
		f.ids.EXPECT().NewPublicID().Return("taken").Once()
		f.ids.EXPECT().NewPublicID().Return("fresh").Once()
		f.links.EXPECT().Create(ctx, mock.MatchedBy(func(l *entity.Link) bool { return l.PublicID == "taken" })).
			Return(errs.ErrDuplicatePublicID).Once()
		f.links.EXPECT().Create(ctx, mock.MatchedBy(func(l *entity.Link) bool { return l.PublicID == "fresh" })).
			Return(nil).Once()
		f.txs.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.metrics.EXPECT().LinkCreated("voting", "3d").Once()

		result, err := f.useCase.Create(ctx, "u-1", usecase.CreateLinkRequest{
			Name: "x", Duration: "3d", PlatformCount: 1, Content: votingContent(),
		})

		require.NoError(t, err)
		assert.Equal(t, "fresh", result.Link.Link.PublicID)
		assert.Equal(t, f.now.Add(3*day), result.Link.Link.ExpiresAt)
	})

	t.Run("should reject invalid input before any storage access", func(t *testing.T) {
		f := newLinkFixture(t)
		testCases := []usecase.CreateLinkRequest{
			{Name: "x", Duration: "forever", PlatformCount: 1, Content: votingContent()},
			{Name: "x", Duration: "1", PlatformCount: 4, Content: votingContent()},
			{Name: "", Duration: "1", PlatformCount: 1, Content: votingContent()},
			{Name: "x", Duration: "1", PlatformCount: 1, Content: &entity.VotingContent{}},
			{Name: "x", Duration: "1", Content: &entity.ScratchContent{}},
		}

		for _, req := range testCases {
			_, err := f.useCase.Create(ctx, "u-1", req)
			assert.ErrorIs(t, err, errs.ErrValidation)
		}
		f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestLinkUseCase_Extend(t *testing.T) {
	ctx := context.Background()

	existing := func(f *linkFixture, expiresAt time.Time) *entity.Link {
		return &entity.Link{
			ID: "l-1", PublicID: "pub", OwnerID: "u-1", Name: "Finals",
			Type: entity.LinkTypeGiveaway, PlatformCount: 2, ExpiresAt: expiresAt,
			CreatedAt: f.now.Add(-10 * day),
		}
	}

	t.Run("should stack on remaining time of an active link", func(t *testing.T) {
		f := newLinkFixture(t)
		current := f.now.Add(2 * day)
		want := current.Add(14 * day)

		f.links.EXPECT().GetByID(ctx, "l-1").Return(existing(f, current), nil).Once()
		f.ledger.EXPECT().Debit(ctx, "u-1", int64(6500*2), "link:extend").Return(int64(50), nil).Once()
		f.links.EXPECT().UpdateExpiry(ctx, "l-1", "u-1", current, want).Return(nil).Once()
		f.txs.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
		f.metrics.EXPECT().LinkExtended("giveaway", 2).Once()

		result, err := f.useCase.Extend(ctx, "l-1", "u-1", 2)

		require.NoError(t, err)
		assert.Equal(t, want, result.Link.Link.ExpiresAt)
		assert.Equal(t, current, *result.PreviousExpiry)
		assert.Equal(t, int64(13000), result.Price)
		assert.True(t, result.Link.Link.ExpiresAt.After(current))
	})

	t.Run("should restart an expired link from now", func(t *testing.T) {
		f := newLinkFixture(t)
		current := f.now.Add(-40 * day)
		want := f.now.Add(7 * day)

		f.links.EXPECT().GetByID(ctx, "l-1").Return(existing(f, current), nil).Once()
		f.ledger.EXPECT().Debit(ctx, "u-1", int64(6500), "link:extend").Return(int64(0), nil).Once()
		f.links.EXPECT().UpdateExpiry(ctx, "l-1", "u-1", current, want).Return(nil).Once()
		f.txs.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.metrics.EXPECT().LinkExtended("giveaway", 1).Once()

		result, err := f.useCase.Extend(ctx, "l-1", "u-1", 1)

		require.NoError(t, err)
		assert.Equal(t, want, result.Link.Link.ExpiresAt)
		assert.False(t, result.Link.Expired)
	})

	t.Run("should leave expiry unchanged when balance is insufficient", func(t *testing.T) {
		f := newLinkFixture(t)
		f.links.EXPECT().GetByID(ctx, "l-1").Return(existing(f, f.now.Add(day)), nil).Once()
		f.ledger.EXPECT().Debit(ctx, "u-1", int64(6500), "link:extend").
			Return(int64(0), errs.NewInsufficientBalanceError("u-1", 6500, 10)).Once()

		_, err := f.useCase.Extend(ctx, "l-1", "u-1", 1)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		f.links.AssertNotCalled(t, "UpdateExpiry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should hide links owned by someone else", func(t *testing.T) {
		f := newLinkFixture(t)
		f.links.EXPECT().GetByID(ctx, "l-1").Return(existing(f, f.now), nil).Once()

		_, err := f.useCase.Extend(ctx, "l-1", "intruder", 1)

		assert.ErrorIs(t, err, errs.ErrLinkNotFound)
		f.ledger.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should propagate a concurrent expiry change", func(t *testing.T) {
		f := newLinkFixture(t)
		current := f.now.Add(day)
		f.links.EXPECT().GetByID(ctx, "l-1").Return(existing(f, current), nil).Once()
		f.ledger.EXPECT().Debit(ctx, "u-1", int64(6500), "link:extend").Return(int64(0), nil).Once()
		f.links.EXPECT().UpdateExpiry(ctx, "l-1", "u-1", current, current.Add(7*day)).
			Return(errs.ErrTransientConflict).Once()

		_, err := f.useCase.Extend(ctx, "l-1", "u-1", 1)

		assert.ErrorIs(t, err, errs.ErrTransientConflict)
	})

	t.Run("should reject week counts out of range", func(t *testing.T) {
		f := newLinkFixture(t)
		for _, weeks := range []int{0, -1, entity.MaxLinkWeeks + 1} {
			_, err := f.useCase.Extend(ctx, "l-1", "u-1", weeks)
			assert.ErrorIs(t, err, errs.ErrValidation)
		}
	})
}

func TestLinkUseCase_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("GetPublic serves active links", func(t *testing.T) {
		f := newLinkFixture(t)
		link := &entity.Link{ID: "l-1", PublicID: "pub", ExpiresAt: f.now.Add(time.Hour)}
		f.links.EXPECT().GetByPublicID(ctx, "pub").Return(link, nil).Once()

		view, err := f.useCase.GetPublic(ctx, "pub")

		require.NoError(t, err)
		assert.Equal(t, time.Hour, view.Remaining)
	})

	t.Run("GetPublic refuses expired links", func(t *testing.T) {
		f := newLinkFixture(t)
		link := &entity.Link{ID: "l-1", PublicID: "pub", ExpiresAt: f.now.Add(-time.Second)}
		f.links.EXPECT().GetByPublicID(ctx, "pub").Return(link, nil).Once()

		view, err := f.useCase.GetPublic(ctx, "pub")

		assert.ErrorIs(t, err, errs.ErrLinkExpired)
		assert.Nil(t, view)
	})

	t.Run("List derives expiry at read time", func(t *testing.T) {
		f := newLinkFixture(t)
		f.links.EXPECT().ListByOwner(ctx, "u-1").Return([]*entity.Link{
			{ID: "a", ExpiresAt: f.now.Add(day)},
			{ID: "b", ExpiresAt: f.now.Add(-day)},
		}, nil).Once()

		views, err := f.useCase.List(ctx, "u-1")

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.False(t, views[0].Expired)
		assert.True(t, views[1].Expired)
	})

	t.Run("Get hides other owners", func(t *testing.T) {
		f := newLinkFixture(t)
		f.links.EXPECT().GetByID(ctx, "l-1").Return(&entity.Link{ID: "l-1", OwnerID: "u-2"}, nil).Once()

		_, err := f.useCase.Get(ctx, "l-1", "u-1")

		assert.ErrorIs(t, err, errs.ErrLinkNotFound)
	})
}

func TestLinkUseCase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("UpdateContent replaces same-variant content without ledger effect", func(t *testing.T) {
		f := newLinkFixture(t)
		link, err := entity.NewLink("l-1", "pub", "u-1", "Finals", votingContent(), 1, f.now.Add(day), f.now.Add(-day))
		require.NoError(t, err)
		f.links.EXPECT().GetByID(ctx, "l-1").Return(link, nil).Once()
		f.links.EXPECT().UpdateContent(ctx, link).Return(nil).Once()

		edited := votingContent()
		edited.Writeup = "Updated pitch"
		view, err := f.useCase.UpdateContent(ctx, "l-1", "u-1", "Semi-finals", edited)

		require.NoError(t, err)
		assert.Equal(t, "Semi-finals", view.Link.Name)
		assert.Equal(t, "Updated pitch", view.Link.Content.(*entity.VotingContent).Writeup)
		assert.Equal(t, f.now, view.Link.UpdatedAt)
		f.ledger.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UpdateContent rejects a type change", func(t *testing.T) {
		f := newLinkFixture(t)
		link, err := entity.NewLink("l-1", "pub", "u-1", "Finals", votingContent(), 1, f.now.Add(day), f.now)
		require.NoError(t, err)
		f.links.EXPECT().GetByID(ctx, "l-1").Return(link, nil).Once()

		_, err = f.useCase.UpdateContent(ctx, "l-1", "u-1", "", &entity.CustomContent{
			Title: "t", Writeup: "w", ImageURL: "https://x.io/a.png",
		})

		assert.ErrorIs(t, err, errs.ErrValidation)
		f.links.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything)
	})

	t.Run("Delete passes ownership to storage", func(t *testing.T) {
		f := newLinkFixture(t)
		f.links.EXPECT().Delete(ctx, "l-1", "u-2").Return(errs.ErrLinkNotFound).Once()
		f.links.EXPECT().Delete(ctx, "l-1", "u-1").Return(nil).Once()

		assert.ErrorIs(t, f.useCase.Delete(ctx, "l-1", "u-2"), errs.ErrLinkNotFound)
		assert.NoError(t, f.useCase.Delete(ctx, "l-1", "u-1"))
	})
}
