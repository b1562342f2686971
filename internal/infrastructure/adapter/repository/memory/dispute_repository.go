package memory

import (
	"context"
	"sort"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
)

type disputeRepository struct {
	store *Store
	tx    *memoryTx
}

func (r *disputeRepository) lock() func() {
	r.store.mu.Lock()
	if r.tx != nil {
		r.tx.mu.Lock()
		return func() { r.tx.mu.Unlock(); r.store.mu.Unlock() }
	}
	return r.store.mu.Unlock
}

func (r *disputeRepository) lookup(id string) *entity.Dispute {
	if r.tx != nil {
		if d, ok := r.tx.disputes[id]; ok {
			return d
		}
	}
	return r.store.disputes[id]
}

// visible merges committed and staged disputes
func (r *disputeRepository) visible() map[string]*entity.Dispute {
	all := make(map[string]*entity.Dispute, len(r.store.disputes))
	for id, d := range r.store.disputes {
		all[id] = d
	}
	if r.tx != nil {
		for id, d := range r.tx.disputes {
			all[id] = d
		}
	}
	return all
}

func (r *disputeRepository) Create(_ context.Context, dispute *entity.Dispute) error {
	unlock := r.lock()
	defer unlock()

	if r.lookup(dispute.ID) != nil {
		return errs.NewConflictError(dispute.ID, "dispute already exists")
	}
	for _, d := range r.visible() {
		if d.TransactionID == dispute.TransactionID && d.Status.IsActive() {
			return errs.NewConflictError(dispute.TransactionID, "an active dispute already exists")
		}
	}

	stored := dispute.Clone()
	stored.Version = 1
	dispute.Version = 1
	if r.tx == nil {
		r.store.disputes[stored.ID] = stored
		return nil
	}
	r.tx.disputes[stored.ID] = stored
	r.tx.baseVersions["dispute/"+stored.ID] = -1
	return nil
}

func (r *disputeRepository) GetByID(_ context.Context, id string) (*entity.Dispute, error) {
	unlock := r.lock()
	defer unlock()

	d := r.lookup(id)
	if d == nil {
		return nil, errs.ErrDisputeNotFound
	}
	return d.Clone(), nil
}

func (r *disputeRepository) GetForUpdate(ctx context.Context, id string) (*entity.Dispute, error) {
	return r.GetByID(ctx, id)
}

func (r *disputeRepository) Update(_ context.Context, dispute *entity.Dispute) error {
	unlock := r.lock()
	defer unlock()

	current := r.lookup(dispute.ID)
	if current == nil {
		return errs.ErrDisputeNotFound
	}
	if current.Version != dispute.Version {
		return errs.NewConflictError(dispute.ID, "dispute was modified concurrently")
	}

	stored := dispute.Clone()
	stored.Version++
	dispute.Version++
	if r.tx == nil {
		r.store.disputes[stored.ID] = stored
		return nil
	}
	key := "dispute/" + stored.ID
	if _, staged := r.tx.baseVersions[key]; !staged {
		r.tx.baseVersions[key] = current.Version
	}
	r.tx.disputes[stored.ID] = stored
	return nil
}

func (r *disputeRepository) GetActiveByTransactionID(_ context.Context, transactionID string) (*entity.Dispute, error) {
	unlock := r.lock()
	defer unlock()

	for _, d := range r.visible() {
		if d.TransactionID == transactionID && d.Status.IsActive() {
			return d.Clone(), nil
		}
	}
	return nil, errs.ErrDisputeNotFound
}

func (r *disputeRepository) GetLatestByTransactionID(_ context.Context, transactionID string) (*entity.Dispute, error) {
	unlock := r.lock()
	defer unlock()

	var latest *entity.Dispute
	for _, d := range r.visible() {
		if d.TransactionID != transactionID {
			continue
		}
		if latest == nil || d.CreatedAt.After(latest.CreatedAt) ||
			(d.CreatedAt.Equal(latest.CreatedAt) && d.ID > latest.ID) {
			latest = d
		}
	}
	if latest == nil {
		return nil, errs.ErrDisputeNotFound
	}
	return latest.Clone(), nil
}

func (r *disputeRepository) ListUnsettled(_ context.Context, updatedBefore time.Time, limit int) ([]*entity.Dispute, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Dispute
	for _, d := range r.store.disputes {
		if d.NeedsSettlement() && !d.UpdatedAt.After(updatedBefore) {
			out = append(out, d.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	return truncate(out, limit), nil
}
