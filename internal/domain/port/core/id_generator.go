package core

// IDGenerator issues identifiers for new records
type IDGenerator interface {
	// NewID returns a globally unique identifier
	NewID() string
	// NewPublicID returns a short identifier safe to put in a URL.
	// Collisions are possible and must be retried by the caller.
	NewPublicID() string
}
