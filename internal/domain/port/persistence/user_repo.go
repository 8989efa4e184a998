package persistence

import (
	"context"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// UserRepository defines the methods to interact with user data.
// Balance changes go through DebitBalance/CreditBalance only; both are
// single conditional statements so concurrent requests never lose an update.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	//
	// Possible errors:
	// - ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByMessagingID retrieves the user currently bound to a messaging identity
	//
	// Possible errors:
	// - ErrUserNotFound: If no user holds the identity
	GetByMessagingID(ctx context.Context, messagingID int64) (*entity.User, error)

	// Create saves a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the ID or email is taken
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole changes the user's role
	UpdateRole(ctx context.Context, id string, role entity.Role) error

	// DebitBalance subtracts amount only if the balance covers it and
	// returns the new balance
	//
	// Possible errors:
	// - InsufficientBalanceError: If balance < amount (no change is made)
	// - ErrUserNotFound: If user doesn't exist
	DebitBalance(ctx context.Context, id string, amount int64) (int64, error)

	// CreditBalance adds amount and returns the new balance
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	CreditBalance(ctx context.Context, id string, amount int64) (int64, error)

	// BindMessagingID associates a messaging identity with the user and turns
	// notifications on, replacing any previous identity of that user
	//
	// Possible errors:
	// - ErrMessagingIdentityBound: If another user holds the identity
	// - ErrUserNotFound
	BindMessagingID(ctx context.Context, id string, messagingID int64) error

	// SetNotifications toggles the notification preference
	SetNotifications(ctx context.Context, id string, enabled bool) error

	// Count returns the number of users
	Count(ctx context.Context) (int64, error)
}
