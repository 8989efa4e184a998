package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// CreateLinkRequest is a purchase of a new link
type CreateLinkRequest struct {
	Name          string
	Duration      string // "3d" or a week count such as "2" or "2w"
	PlatformCount int    // social types only
	Content       entity.LinkContent
}

// LinkView is a link plus state derived at read time
type LinkView struct {
	Link      *entity.Link
	Expired   bool
	Remaining time.Duration
}

// LinkPurchaseResult is returned by Create and Extend
type LinkPurchaseResult struct {
	Link           *LinkView
	Price          int64
	Balance        int64
	PreviousExpiry *time.Time // set by Extend only
}

// LinkUseCase manages the paid lifecycle of links
type LinkUseCase interface {
	// Create validates, prices and persists a new link, debiting the owner
	//
	// Possible errors:
	// - ValidationError: If content or cardinality is invalid
	// - ErrMessagingIdentityRequired: If the owner has no bound identity
	// - InsufficientBalanceError: If the owner cannot pay (nothing is persisted)
	Create(ctx context.Context, ownerID string, req CreateLinkRequest) (*LinkPurchaseResult, error)

	// Extend adds whole weeks to an owned link, stacking on unexpired time
	//
	// Possible errors:
	// - ErrLinkNotFound: If the link does not exist or is not owned
	// - InsufficientBalanceError: If the owner cannot pay (expiry unchanged)
	Extend(ctx context.Context, linkID, ownerID string, weeks int) (*LinkPurchaseResult, error)

	// Delete removes an owned link; no credits are refunded
	Delete(ctx context.Context, linkID, ownerID string) error

	// Get returns an owned link
	Get(ctx context.Context, linkID, ownerID string) (*LinkView, error)

	// List returns the owner's links, newest first
	List(ctx context.Context, ownerID string) ([]*LinkView, error)

	// GetPublic resolves a public identifier for visitors
	//
	// Possible errors:
	// - ErrLinkNotFound
	// - ErrLinkExpired: If the paid period has ended
	GetPublic(ctx context.Context, publicID string) (*LinkView, error)

	// UpdateContent edits name and content of the same variant; no ledger effect
	UpdateContent(ctx context.Context, linkID, ownerID, name string, content entity.LinkContent) (*LinkView, error)
}
