package persistence

import (
	"context"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// PayoutRepository stores the intended money movements out of escrow
type PayoutRepository interface {
	// CreateIfAbsent stores payout unless one with the same reference exists.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, payout *entity.Payout) (bool, error)

	// GetByReference retrieves one payout
	//
	// Possible errors:
	// - ErrPayoutNotFound: If no payout has the reference
	GetByReference(ctx context.Context, reference string) (*entity.Payout, error)

	// Update persists state changes of a payout
	Update(ctx context.Context, payout *entity.Payout) error

	// ListByOwner returns the payouts of a transaction or dispute, ordered by reference
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Payout, error)
}
