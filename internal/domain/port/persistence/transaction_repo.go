package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// TransactionRepository defines methods to interact with escrow transaction data
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrConflict: If a transaction with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction without locking it
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// GetForUpdate retrieves a transaction and locks its row until the
	// surrounding unit of work ends
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, id string) (*entity.Transaction, error)

	// Update writes the transaction if its Version still matches the stored
	// row, then increments Version on both
	//
	// Possible errors:
	// - ErrConflict: If the stored version moved on
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// ListReadyForAutoRelease returns DELIVERED transactions with no release
	// started whose delivery happened at or before deliveredBefore
	ListReadyForAutoRelease(ctx context.Context, deliveredBefore time.Time, limit int) ([]*entity.Transaction, error)

	// ListByReleaseState returns transactions with the given release state
	// last updated at or before updatedBefore
	ListByReleaseState(ctx context.Context, state entity.ReleaseState, updatedBefore time.Time, limit int) ([]*entity.Transaction, error)
}
