package persistence

import (
	"context"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// WelcomeBonusRepository stores one claim per messaging identity
type WelcomeBonusRepository interface {
	// Exists reports whether the identity has ever claimed the bonus.
	// It is a fast path only; Insert is the authoritative guard.
	Exists(ctx context.Context, messagingID int64) (bool, error)

	// Insert records the claim. It returns false without error when the
	// unique index already holds a claim for the identity.
	Insert(ctx context.Context, claim *entity.WelcomeBonusClaim) (bool, error)
}
