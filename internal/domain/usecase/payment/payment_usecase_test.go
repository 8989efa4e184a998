package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/linkledger/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/linkledger/mocks/port/gateway"
	persistencemocks "github.com/amirhossein-jamali/linkledger/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/linkledger/mocks/port/usecase"
)

type paymentFixture struct {
	users   *persistencemocks.MockUserRepository
	txs     *persistencemocks.MockTransactionRepository
	ledger  *usecasemocks.MockLedgerUseCase
	gateway *gatewaymocks.MockPaymentGateway
	ids     *coremocks.MockIDGenerator
	metrics *coremocks.MockMetricsRecorder
	now     time.Time
	useCase usecase.PaymentUseCase
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	f := &paymentFixture{
		users:   persistencemocks.NewMockUserRepository(t),
		txs:     persistencemocks.NewMockTransactionRepository(t),
		ledger:  usecasemocks.NewMockLedgerUseCase(t),
		gateway: gatewaymocks.NewMockPaymentGateway(t),
		ids:     coremocks.NewMockIDGenerator(t),
		metrics: coremocks.NewMockMetricsRecorder(t),
		now:     time.Date(2024, 8, 15, 14, 0, 0, 0, time.UTC),
	}

	uow := persistencemocks.NewMockUnitOfWork(t)
	uow.EXPECT().Users(mock.Anything).Return(f.users).Maybe()
	uow.EXPECT().Transactions(mock.Anything).Return(f.txs).Maybe()

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(f.now).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.useCase = NewPaymentUseCase(uow, f.ledger, f.gateway, f.ids, "https://app.example.com/paid",
		timeProvider, logger, f.metrics)
	return f
}

func pendingPurchase(reference, userID string, credits int64) *entity.Transaction {
	return &entity.Transaction{
		Reference: reference,
		UserID:    userID,
		Kind:      entity.KindPurchase,
		Status:    entity.StatusPending,
		Amount:    credits,
	}
}

func TestPaymentUseCase_Initialize(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: "u-1", Email: "buyer@example.com"}

	t.Run("should record pending purchase and open checkout", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.users.EXPECT().GetByID(ctx, "u-1").Return(user, nil).Once()
		f.ids.EXPECT().NewID().Return("ref-abc").Once()
		f.txs.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Reference == "ref-abc" &&
				tx.Status == entity.StatusPending &&
				tx.Kind == entity.KindPurchase &&
				tx.Amount == 5000
		})).Return(nil).Once()
		f.gateway.EXPECT().Initialize(ctx, mock.MatchedBy(func(req gateway.InitializeRequest) bool {
			return req.Reference == "ref-abc" &&
				req.Email == "buyer@example.com" &&
				req.AmountMinor == 500_000 &&
				req.CallbackURL == "https://app.example.com/paid"
		})).Return(&gateway.InitializeResult{
			Reference:        "ref-abc",
			AuthorizationURL: "https://checkout.example.com/xyz",
			AccessCode:       "xyz",
		}, nil).Once()

		session, err := f.useCase.Initialize(ctx, "u-1", 5000)

		require.NoError(t, err)
		assert.Equal(t, "ref-abc", session.Reference)
		assert.Equal(t, "https://checkout.example.com/xyz", session.AuthorizationURL)
		assert.Equal(t, int64(500_000), session.AmountMinor)
	})

	t.Run("should reject amounts outside purchase bounds", func(t *testing.T) {
		f := newPaymentFixture(t)
		for _, credits := range []int64{0, 999, 1_000_001} {
			_, err := f.useCase.Initialize(ctx, "u-1", credits)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
		f.gateway.AssertNotCalled(t, "Initialize", mock.Anything, mock.Anything)
	})

	t.Run("should mark the purchase failed when the gateway is down", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.users.EXPECT().GetByID(ctx, "u-1").Return(user, nil).Once()
		f.ids.EXPECT().NewID().Return("ref-down").Once()
		f.txs.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.gateway.EXPECT().Initialize(ctx, mock.Anything).Return(nil, errors.New("dial tcp: i/o timeout")).Once()
		f.txs.EXPECT().TransitionStatus(ctx, "ref-down", entity.StatusFailed, f.now).Return(true, nil).Once()

		_, err := f.useCase.Initialize(ctx, "u-1", 1000)

		require.ErrorIs(t, err, errs.ErrUpstreamGateway)
		assert.Equal(t, "payment gateway unavailable", err.Error())
	})
}

func TestPaymentUseCase_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("should credit once even when verified twice", func(t *testing.T) {
		f := newPaymentFixture(t)
		pending := pendingPurchase("ref-1", "u-1", 2000)
		settled := pendingPurchase("ref-1", "u-1", 2000)
		settled.Status = entity.StatusSuccess

		f.txs.EXPECT().GetByReference(ctx, "ref-1").Return(pending, nil).Once()
		f.txs.EXPECT().GetByReference(ctx, "ref-1").Return(settled, nil).Once()
		f.gateway.EXPECT().Verify(ctx, "ref-1").Return(&gateway.VerifyResult{
			Reference: "ref-1", Status: gateway.PaymentSuccess, AmountMinor: 200_000, Currency: "NGN",
		}, nil).Once()
		f.ledger.EXPECT().CreditOnce(ctx, usecase.CreditRequest{
			Reference: "ref-1", UserID: "u-1", Kind: entity.KindPurchase, Amount: 2000, Reason: purchaseReason,
		}).Return(&usecase.CreditOnceResult{Applied: true, Status: entity.StatusSuccess, Balance: 2000}, nil).Once()
		f.metrics.EXPECT().PaymentVerification("client", "credited").Once()
		f.metrics.EXPECT().PaymentVerification("client", "already_settled").Once()

		first, err := f.useCase.Verify(ctx, "u-1", "ref-1")
		require.NoError(t, err)
		assert.True(t, first.Credited)
		assert.Equal(t, entity.StatusSuccess, first.Status)
		require.NotNil(t, first.Balance)
		assert.Equal(t, int64(2000), *first.Balance)

		second, err := f.useCase.Verify(ctx, "u-1", "ref-1")
		require.NoError(t, err)
		assert.False(t, second.Credited)
		assert.Equal(t, entity.StatusSuccess, second.Status)
	})

	t.Run("should hide references owned by another user", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.txs.EXPECT().GetByReference(ctx, "ref-1").Return(pendingPurchase("ref-1", "u-2", 1000), nil).Once()

		_, err := f.useCase.Verify(ctx, "u-1", "ref-1")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		f.gateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("should report concurrent settlement without double credit", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.txs.EXPECT().GetByReference(ctx, "ref-1").Return(pendingPurchase("ref-1", "u-1", 1000), nil).Once()
		f.gateway.EXPECT().Verify(ctx, "ref-1").Return(&gateway.VerifyResult{
			Status: gateway.PaymentSuccess, AmountMinor: 100_000,
		}, nil).Once()
		f.ledger.EXPECT().CreditOnce(ctx, mock.Anything).
			Return(&usecase.CreditOnceResult{Applied: false, Status: entity.StatusSuccess}, nil).Once()
		f.metrics.EXPECT().PaymentVerification("client", "already_settled").Once()

		outcome, err := f.useCase.Verify(ctx, "u-1", "ref-1")

		require.NoError(t, err)
		assert.False(t, outcome.Credited)
		assert.Nil(t, outcome.Balance)
	})

	t.Run("should keep the reference pending on gateway failure", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.txs.EXPECT().GetByReference(ctx, "ref-1").Return(pendingPurchase("ref-1", "u-1", 1000), nil).Once()
		f.gateway.EXPECT().Verify(ctx, "ref-1").Return(nil, errors.New("502 bad gateway")).Once()
		f.metrics.EXPECT().PaymentVerification("client", "upstream_error").Once()

		_, err := f.useCase.Verify(ctx, "u-1", "ref-1")

		var upstream *errs.UpstreamGatewayError
		require.ErrorAs(t, err, &upstream)
		assert.True(t, upstream.Retryable)
		assert.Equal(t, "verify", upstream.Operation)
		f.txs.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.ledger.AssertNotCalled(t, "CreditOnce", mock.Anything, mock.Anything)
	})

	t.Run("should fail a purchase paid below its amount", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.txs.EXPECT().GetByReference(ctx, "ref-1").Return(pendingPurchase("ref-1", "u-1", 1000), nil).Once()
		f.gateway.EXPECT().Verify(ctx, "ref-1").Return(&gateway.VerifyResult{
			Status: gateway.PaymentSuccess, AmountMinor: 99_999,
		}, nil).Once()
		f.txs.EXPECT().TransitionStatus(ctx, "ref-1", entity.StatusFailed, f.now).Return(true, nil).Once()
		f.metrics.EXPECT().PaymentVerification("client", "amount_mismatch").Once()

		outcome, err := f.useCase.Verify(ctx, "u-1", "ref-1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, outcome.Status)
		f.ledger.AssertNotCalled(t, "CreditOnce", mock.Anything, mock.Anything)
	})
}

func TestPaymentUseCase_HandleCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("should mark abandoned payments failed", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.txs.EXPECT().GetByReference(ctx, "ref-9").Return(pendingPurchase("ref-9", "u-1", 1000), nil).Once()
		f.gateway.EXPECT().Verify(ctx, "ref-9").Return(&gateway.VerifyResult{Status: gateway.PaymentAbandoned}, nil).Once()
		f.txs.EXPECT().TransitionStatus(ctx, "ref-9", entity.StatusFailed, f.now).Return(true, nil).Once()
		f.metrics.EXPECT().PaymentVerification("callback", "failed").Once()

		outcome, err := f.useCase.HandleCallback(ctx, "ref-9")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, outcome.Status)
		assert.False(t, outcome.Credited)
	})

	t.Run("should report the winner when failure loses a race", func(t *testing.T) {
		f := newPaymentFixture(t)
		settled := pendingPurchase("ref-9", "u-1", 1000)
		settled.Status = entity.StatusSuccess
		f.txs.EXPECT().GetByReference(ctx, "ref-9").Return(pendingPurchase("ref-9", "u-1", 1000), nil).Once()
		f.gateway.EXPECT().Verify(ctx, "ref-9").Return(&gateway.VerifyResult{Status: gateway.PaymentFailed}, nil).Once()
		f.txs.EXPECT().TransitionStatus(ctx, "ref-9", entity.StatusFailed, f.now).Return(false, nil).Once()
		f.txs.EXPECT().GetByReference(ctx, "ref-9").Return(settled, nil).Once()
		f.metrics.EXPECT().PaymentVerification("callback", "failed").Once()

		outcome, err := f.useCase.HandleCallback(ctx, "ref-9")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSuccess, outcome.Status)
	})

	t.Run("should leave pending payments untouched", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.txs.EXPECT().GetByReference(ctx, "ref-9").Return(pendingPurchase("ref-9", "u-1", 1000), nil).Once()
		f.gateway.EXPECT().Verify(ctx, "ref-9").Return(&gateway.VerifyResult{Status: gateway.PaymentPending}, nil).Once()
		f.metrics.EXPECT().PaymentVerification("callback", "pending").Once()

		outcome, err := f.useCase.HandleCallback(ctx, "ref-9")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, outcome.Status)
	})

	t.Run("should not settle non-purchase references", func(t *testing.T) {
		f := newPaymentFixture(t)
		bonus := pendingPurchase("bonus:1", "u-1", 2000)
		bonus.Kind = entity.KindBonus
		f.txs.EXPECT().GetByReference(ctx, "bonus:1").Return(bonus, nil).Once()

		_, err := f.useCase.HandleCallback(ctx, "bonus:1")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("should report unknown references", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.txs.EXPECT().GetByReference(ctx, "nope").Return(nil, errs.ErrTransactionNotFound).Once()

		_, err := f.useCase.HandleCallback(ctx, "nope")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		_, err = f.useCase.HandleCallback(ctx, "  ")
		assert.ErrorIs(t, err, errs.ErrInvalidReference)
	})
}
