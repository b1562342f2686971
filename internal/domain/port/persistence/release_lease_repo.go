package persistence

import (
	"context"
	"time"
)

// ReleaseLeaseRepository hands out a short exclusive lease per settlement
// so two workers never drive the same payouts at once. An expired lease
// can be taken over, which lets a crashed release be resumed.
type ReleaseLeaseRepository interface {
	// AcquireLease takes the lease on key for holder until duration elapses
	//
	// Possible errors:
	// - ErrLeaseHeld: If another holder owns an unexpired lease on key
	// - ErrDatabaseConnection: If database connection fails
	AcquireLease(ctx context.Context, key, holder string, duration time.Duration) error

	// ReleaseLease gives up the lease if holder still owns it
	ReleaseLease(ctx context.Context, key, holder string) error
}
