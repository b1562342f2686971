package persistence

import (
	"context"
)

// UnitOfWork coordinates reads and writes across repositories so a
// lifecycle change and its dispute or payout rows commit together
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise. Implementations may retry fn on transient
	// serialization failures, so fn must only touch state through ctx.
	Do(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetDisputeRepository returns a dispute repository bound to the current transaction
	GetDisputeRepository(ctx context.Context) DisputeRepository

	// GetPayoutRepository returns a payout repository bound to the current transaction
	GetPayoutRepository(ctx context.Context) PayoutRepository
}
