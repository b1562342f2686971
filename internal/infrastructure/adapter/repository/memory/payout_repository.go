package memory

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
)

type payoutRepository struct {
	store *Store
	tx    *memoryTx
}

func (r *payoutRepository) lock() func() {
	r.store.mu.Lock()
	if r.tx != nil {
		r.tx.mu.Lock()
		return func() { r.tx.mu.Unlock(); r.store.mu.Unlock() }
	}
	return r.store.mu.Unlock
}

func (r *payoutRepository) lookup(ref string) *entity.Payout {
	if r.tx != nil {
		if p, ok := r.tx.payouts[ref]; ok {
			return p
		}
	}
	return r.store.payouts[ref]
}

func (r *payoutRepository) CreateIfAbsent(_ context.Context, payout *entity.Payout) (bool, error) {
	unlock := r.lock()
	defer unlock()

	if r.lookup(payout.Reference) != nil {
		return false, nil
	}
	if r.tx == nil {
		r.store.payouts[payout.Reference] = payout.Clone()
		return true, nil
	}
	r.tx.payouts[payout.Reference] = payout.Clone()
	r.tx.baseVersions["payout/"+payout.Reference] = -1
	return true, nil
}

func (r *payoutRepository) GetByReference(_ context.Context, reference string) (*entity.Payout, error) {
	unlock := r.lock()
	defer unlock()

	p := r.lookup(reference)
	if p == nil {
		return nil, errs.ErrPayoutNotFound
	}
	return p.Clone(), nil
}

func (r *payoutRepository) Update(_ context.Context, payout *entity.Payout) error {
	unlock := r.lock()
	defer unlock()

	if r.lookup(payout.Reference) == nil {
		return errs.ErrPayoutNotFound
	}
	if r.tx == nil {
		r.store.payouts[payout.Reference] = payout.Clone()
		return nil
	}
	r.tx.payouts[payout.Reference] = payout.Clone()
	return nil
}

func (r *payoutRepository) ListByOwner(_ context.Context, ownerID string) ([]*entity.Payout, error) {
	unlock := r.lock()
	defer unlock()

	seen := make(map[string]*entity.Payout)
	for ref, p := range r.store.payouts {
		if p.OwnerID == ownerID {
			seen[ref] = p
		}
	}
	if r.tx != nil {
		for ref, p := range r.tx.payouts {
			if p.OwnerID == ownerID {
				seen[ref] = p
			}
		}
	}

	out := make([]*entity.Payout, 0, len(seen))
	for _, p := range seen {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reference < out[j].Reference })
	return out, nil
}
