package memory

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
)

// ReleaseLeaseRepository keeps leases in the store
type ReleaseLeaseRepository struct {
	store *Store
}

var _ persistence.ReleaseLeaseRepository = (*ReleaseLeaseRepository)(nil)

// NewReleaseLeaseRepository creates a lease repository over store
func NewReleaseLeaseRepository(store *Store) *ReleaseLeaseRepository {
	return &ReleaseLeaseRepository{store: store}
}

func (r *ReleaseLeaseRepository) AcquireLease(_ context.Context, key, holder string, duration time.Duration) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.timeProvider.Now()
	if current, ok := r.store.leases[key]; ok && current.holder != holder && now.Before(current.expiresAt) {
		return errs.ErrLeaseHeld
	}
	r.store.leases[key] = lease{holder: holder, expiresAt: now.Add(duration)}
	return nil
}

func (r *ReleaseLeaseRepository) ReleaseLease(_ context.Context, key, holder string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if current, ok := r.store.leases[key]; ok && current.holder == holder {
		delete(r.store.leases, key)
	}
	return nil
}
