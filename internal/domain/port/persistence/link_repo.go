package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// LinkRepository defines the methods to interact with link data
type LinkRepository interface {
	// Create saves a new link
	//
	// Possible errors:
	// - ErrDuplicatePublicID: If the public identifier collides
	Create(ctx context.Context, link *entity.Link) error

	// GetByID retrieves a link by ID
	//
	// Possible errors:
	// - ErrLinkNotFound
	GetByID(ctx context.Context, id string) (*entity.Link, error)

	// GetByPublicID retrieves a link by its short public identifier
	//
	// Possible errors:
	// - ErrLinkNotFound
	GetByPublicID(ctx context.Context, publicID string) (*entity.Link, error)

	// ListByOwner returns the owner's links, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Link, error)

	// UpdateExpiry moves expires_at from current to next, guarded on the row
	// still holding current so two concurrent extensions cannot both stack on
	// the same base
	//
	// Possible errors:
	// - ErrLinkNotFound: If the owner has no such link
	// - ErrTransientConflict: If expires_at changed underneath
	UpdateExpiry(ctx context.Context, id, ownerID string, current, next time.Time) error

	// UpdateContent persists edited name and content
	//
	// Possible errors:
	// - ErrLinkNotFound
	UpdateContent(ctx context.Context, link *entity.Link) error

	// Delete removes an owned link
	//
	// Possible errors:
	// - ErrLinkNotFound: If the owner has no such link
	Delete(ctx context.Context, id, ownerID string) error

	// Count returns total links and those still active at now
	Count(ctx context.Context, now time.Time) (total int64, active int64, err error)
}
