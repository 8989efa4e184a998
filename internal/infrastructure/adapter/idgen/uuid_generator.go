// Package idgen issues record identifiers backed by google/uuid.
package idgen

import (
	"encoding/base32"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// PublicIDLength is the number of characters in a public link identifier
const PublicIDLength = 10

var publicEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// UUIDGenerator implements core.IDGenerator
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new generator
func NewUUIDGenerator() core.IDGenerator {
	return UUIDGenerator{}
}

// NewID returns a random UUIDv4 string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewPublicID returns 50 random bits as 10 base32 characters. The caller
// retries on the rare collision.
func (UUIDGenerator) NewPublicID() string {
	id := uuid.New()
	// Bytes 6 and 8 carry version and variant bits; skip past them
	return publicEncoding.EncodeToString(id[9:16])[:PublicIDLength]
}
