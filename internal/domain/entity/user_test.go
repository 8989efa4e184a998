package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/linkledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("u-1", "  Alice@Example.COM ", "alice", RoleUser, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, RoleUser, user.Role)
		assert.Equal(t, int64(0), user.Balance())
		assert.Nil(t, user.MessagingID)
		assert.False(t, user.NotificationsEnabled)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Username defaults to email local part", func(t *testing.T) {
		user, err := NewUser("u-2", "bob@example.com", "", RoleAdmin, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.True(t, user.IsAdmin())
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		user, err := NewUser("  ", "bob@example.com", "", RoleUser, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, user)
	})

	t.Run("Invalid fields", func(t *testing.T) {
		testCases := []struct {
			name  string
			email string
			role  Role
			field string
		}{
			{"empty email", "", RoleUser, "email"},
			{"malformed email", "not-an-email", RoleUser, "email"},
			{"unknown role", "a@b.co", Role("root"), "role"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser("u-3", tc.email, "", tc.role, mockTime)

				require.Error(t, err)
				assert.Nil(t, user)
				var verr *errs.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, tc.field)
			})
		}
	})
}

func TestUserBalance(t *testing.T) {
	user := &User{ID: "u-1"}
	user.SetBalance(500)

	assert.Equal(t, int64(500), user.Balance())
	assert.True(t, user.CanAfford(500))
	assert.True(t, user.CanAfford(0))
	assert.False(t, user.CanAfford(501))
	assert.False(t, user.CanAfford(-1))
}

func TestUserMessagingIdentity(t *testing.T) {
	user := &User{ID: "u-1"}
	assert.False(t, user.HasMessagingIdentity())

	zero := int64(0)
	user.MessagingID = &zero
	assert.False(t, user.HasMessagingIdentity())

	id := int64(424242)
	user.MessagingID = &id
	assert.True(t, user.HasMessagingIdentity())
}

func TestValidateMessagingID(t *testing.T) {
	assert.NoError(t, ValidateMessagingID(1))
	assert.ErrorIs(t, ValidateMessagingID(0), errs.ErrValidation)
	assert.ErrorIs(t, ValidateMessagingID(-5), errs.ErrValidation)
}
