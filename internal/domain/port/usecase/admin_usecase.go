package usecase

import "context"

// GrantResult is returned after an admin credit
type GrantResult struct {
	UserID    string
	Reference string
	Amount    int64
	Balance   int64
}

// Stats summarises the service
type Stats struct {
	Users       int64
	Links       int64
	ActiveLinks int64
	Purchases   int64
	CreditsSold int64
}

// AdminUseCase holds operator-only operations
type AdminUseCase interface {
	// Grant credits a user identified by email
	//
	// Possible errors:
	// - ErrForbidden: If adminID is not an admin
	// - ErrInvalidAmount: If amount <= 0
	// - ErrUserNotFound
	Grant(ctx context.Context, adminID, email string, amount int64, reason string) (*GrantResult, error)

	// Stats returns aggregate counts
	Stats(ctx context.Context) (*Stats, error)
}
