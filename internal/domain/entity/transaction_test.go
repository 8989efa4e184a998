package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/linkledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Pending by default", func(t *testing.T) {
		tx, err := NewTransaction("ref-1", "u-1", KindPurchase, 1500, "credit purchase", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ref-1", tx.Reference)
		assert.Equal(t, "u-1", tx.UserID)
		assert.Equal(t, KindPurchase, tx.Kind)
		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, int64(1500), tx.Amount)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Nil(t, tx.ProcessedAt)
		assert.True(t, tx.IsCredit())
	})

	t.Run("Created terminal gets processed time", func(t *testing.T) {
		md := map[string]any{"linkId": "l-1"}
		tx, err := NewTransaction("spend-1", "u-1", KindSpend, 4000, "link", mockTime,
			WithStatus(StatusSuccess), WithMetadata(md))

		require.NoError(t, err)
		assert.Equal(t, StatusSuccess, tx.Status)
		require.NotNil(t, tx.ProcessedAt)
		assert.Equal(t, fixedTime, *tx.ProcessedAt)
		assert.Equal(t, md, tx.Metadata)
		assert.False(t, tx.IsCredit())
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name      string
			reference string
			userID    string
			kind      TransactionKind
			amount    int64
			want      error
		}{
			{"empty reference", "", "u-1", KindGrant, 10, errs.ErrInvalidReference},
			{"empty user", "ref", "", KindGrant, 10, errs.ErrInvalidUserID},
			{"unknown kind", "ref", "u-1", TransactionKind("refund"), 10, errs.ErrValidation},
			{"zero amount", "ref", "u-1", KindGrant, 0, errs.ErrInvalidAmount},
			{"negative amount", "ref", "u-1", KindGrant, -1, errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tx, err := NewTransaction(tc.reference, tc.userID, tc.kind, tc.amount, "", mockTime)
				assert.ErrorIs(t, err, tc.want)
				assert.Nil(t, tx)
			})
		}
	})
}

func TestTransactionTransitions(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	settled := created.Add(2 * time.Minute)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Once()
	tx, err := NewTransaction("ref-1", "u-1", KindPurchase, 1000, "", mockTime)
	require.NoError(t, err)

	mockTime.EXPECT().Now().Return(settled).Once()
	require.NoError(t, tx.MarkSucceeded(mockTime))
	assert.Equal(t, StatusSuccess, tx.Status)
	assert.Equal(t, settled, *tx.ProcessedAt)

	err = tx.MarkFailed(mockTime)
	assert.ErrorIs(t, err, errs.ErrTransactionTerminal)
	assert.Equal(t, StatusSuccess, tx.Status)

	err = tx.MarkSucceeded(mockTime)
	assert.ErrorIs(t, err, errs.ErrTransactionTerminal)
}

func TestParseTransactionStatus(t *testing.T) {
	s, err := ParseTransactionStatus(" Success ")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, s)
	assert.True(t, s.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())

	_, err = ParseTransactionStatus("refunded")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestBonusReference(t *testing.T) {
	assert.Equal(t, "bonus:77", BonusReference(77))
}
