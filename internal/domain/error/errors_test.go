package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"Validation", NewValidationError("name", "required"), 4000},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"LinkNotFound", ErrLinkNotFound, 4041},
		{"TransactionNotFound", ErrTransactionNotFound, 4042},
		{"MessagingIdentityBound", ErrMessagingIdentityBound, 4090},
		{"TransactionTerminal", ErrTransactionTerminal, 4091},
		{"RateLimited", ErrRateLimited, 4290},
		{"Upstream", NewUpstreamGatewayError("verify", "ref", errors.New("dial tcp")), 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrLinkNotFound), 4041},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	assert.False(t, verr.HasErrors())
	assert.NoError(t, verr.OrNil())

	verr.Add("writeup", "is required")
	verr.Add("image", "must be a jpg or png URL")

	err := verr.OrNil()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "validation failed: image: must be a jpg or png URL; writeup: is required", err.Error())
	assert.Equal(t, "validation", verr.LogFields()["error_type"])
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("u-1", 8000, 3000)

	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.True(t, IsInsufficientBalanceError(fmt.Errorf("debit: %w", err)))
	assert.Equal(t, "insufficient balance for user u-1: required 8000, available 3000", err.Error())

	var detailed *InsufficientBalanceError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, int64(8000), detailed.Required)
	assert.Equal(t, int64(3000), detailed.Available)

	fields := LogFields(err)
	assert.Equal(t, "insufficient_balance", fields["error_type"])
	assert.Equal(t, CodeInsufficientBalance, fields["error_code"])
}

func TestUpstreamGatewayErrorHidesCause(t *testing.T) {
	cause := errors.New("secret key sk_live_xxx rejected")
	err := NewUpstreamGatewayError("verify", "ref-1", cause)

	assert.Equal(t, "payment gateway unavailable", err.Error())
	assert.NotContains(t, err.Error(), "sk_live")
	assert.True(t, errors.Is(err, ErrUpstreamGateway))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsUpstreamError(err))

	fields := LogFields(err)
	assert.Equal(t, true, fields["retryable"])
	assert.Equal(t, cause.Error(), fields["error"])
}

func TestDuplicateTransactionError(t *testing.T) {
	err := NewDuplicateTransactionError("ref-9", "u-2")
	assert.True(t, IsDuplicateTransactionError(err))
	assert.True(t, IsConflictError(err))
	assert.Contains(t, err.Error(), "ref-9")
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("x: %w", ErrLinkNotFound)))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrForbidden))
}

func TestLogFieldsForPlainError(t *testing.T) {
	fields := LogFields(ErrLinkExpired)
	assert.Equal(t, "link has expired", fields["error"])
	assert.Equal(t, CodeLinkExpired, fields["error_code"])
	assert.Empty(t, LogFields(nil))
}
