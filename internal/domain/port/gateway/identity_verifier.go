package gateway

import (
	"context"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// IdentityVerifier validates a bearer credential issued by the external
// identity provider. Account creation and login happen there, not here.
type IdentityVerifier interface {
	// Verify returns the identity carried by token
	//
	// Possible errors:
	// - ErrUnauthorized: If the token is malformed, expired or badly signed
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
