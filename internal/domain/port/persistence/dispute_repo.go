package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// DisputeRepository defines methods to interact with dispute data
type DisputeRepository interface {
	// Create saves a new dispute
	//
	// Possible errors:
	// - ErrConflict: If an active dispute already exists for the transaction
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, dispute *entity.Dispute) error

	// GetByID retrieves a dispute without locking it
	//
	// Possible errors:
	// - ErrDisputeNotFound: If dispute with the given ID doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Dispute, error)

	// GetForUpdate retrieves a dispute and locks its row
	//
	// Possible errors:
	// - ErrDisputeNotFound: If dispute with the given ID doesn't exist
	GetForUpdate(ctx context.Context, id string) (*entity.Dispute, error)

	// Update writes a dispute guarded by its Version
	//
	// Possible errors:
	// - ErrConflict: If the stored version moved on
	// - ErrDisputeNotFound: If dispute with the given ID doesn't exist
	Update(ctx context.Context, dispute *entity.Dispute) error

	// GetActiveByTransactionID returns the open or under-review dispute of a transaction
	//
	// Possible errors:
	// - ErrDisputeNotFound: If the transaction has no active dispute
	GetActiveByTransactionID(ctx context.Context, transactionID string) (*entity.Dispute, error)

	// GetLatestByTransactionID returns the most recently opened dispute of a transaction
	//
	// Possible errors:
	// - ErrDisputeNotFound: If the transaction never had a dispute
	GetLatestByTransactionID(ctx context.Context, transactionID string) (*entity.Dispute, error)

	// ListUnsettled returns resolved disputes whose payouts are not all
	// confirmed, last updated at or before updatedBefore
	ListUnsettled(ctx context.Context, updatedBefore time.Time, limit int) ([]*entity.Dispute, error)
}
