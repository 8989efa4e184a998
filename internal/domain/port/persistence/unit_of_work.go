package persistence

import (
	"context"
)

// UnitOfWork coordinates a database transaction across repositories.
// The transaction travels in the context: repositories obtained with a
// transactional context join it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside a transaction, committing when fn returns nil.
	// When ctx already carries a transaction fn joins it.
	Do(ctx context.Context, fn func(ctx context.Context) error) error

	Users(ctx context.Context) UserRepository
	Links(ctx context.Context) LinkRepository
	Transactions(ctx context.Context) TransactionRepository
	WelcomeBonuses(ctx context.Context) WelcomeBonusRepository
	RateLimits(ctx context.Context) RateLimitRepository
}
