package usecase

import "context"

// BonusClaimResult reports whether a bonus was paid
type BonusClaimResult struct {
	BonusAwarded bool
	BonusAmount  int64
	Balance      int64
}

// BonusUseCase binds a messaging identity and pays the welcome bonus once
// per identity, no matter how often or by whom the claim is repeated.
type BonusUseCase interface {
	// Claim binds messagingID to the user and credits the bonus on first use
	//
	// Possible errors:
	// - ValidationError: If messagingID <= 0
	// - ErrMessagingIdentityBound: If another user holds messagingID
	Claim(ctx context.Context, userID string, messagingID int64) (*BonusClaimResult, error)
}
