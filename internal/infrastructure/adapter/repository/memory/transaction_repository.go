package memory

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
)

type transactionRepository struct {
	store *Store
	tx    *memoryTx
}

// lookup returns the staged copy if any, else the committed one. Both
// s.mu and tx.mu (when tx is set) must be held.
func (r *transactionRepository) lookup(id string) *entity.Transaction {
	if r.tx != nil {
		if t, ok := r.tx.transactions[id]; ok {
			return t
		}
	}
	return r.store.transactions[id]
}

func (r *transactionRepository) lock() func() {
	r.store.mu.Lock()
	if r.tx != nil {
		r.tx.mu.Lock()
		return func() { r.tx.mu.Unlock(); r.store.mu.Unlock() }
	}
	return r.store.mu.Unlock
}

func (r *transactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	unlock := r.lock()
	defer unlock()

	if r.lookup(transaction.ID) != nil {
		return errs.NewConflictError(transaction.ID, "transaction already exists")
	}
	stored := transaction.Clone()
	stored.Version = 1
	transaction.Version = 1
	if r.tx == nil {
		r.store.transactions[stored.ID] = stored
		return nil
	}
	r.tx.transactions[stored.ID] = stored
	r.tx.baseVersions["transaction/"+stored.ID] = -1
	return nil
}

func (r *transactionRepository) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	unlock := r.lock()
	defer unlock()

	t := r.lookup(id)
	if t == nil {
		return nil, errs.ErrTransactionNotFound
	}
	return t.Clone(), nil
}

// GetForUpdate is GetByID; callers serialize per transaction and commit checks versions
func (r *transactionRepository) GetForUpdate(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.GetByID(ctx, id)
}

func (r *transactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	unlock := r.lock()
	defer unlock()

	current := r.lookup(transaction.ID)
	if current == nil {
		return errs.ErrTransactionNotFound
	}
	if current.Version != transaction.Version {
		return errs.NewConflictError(transaction.ID, "transaction was modified concurrently")
	}

	stored := transaction.Clone()
	stored.Version++
	transaction.Version++
	if r.tx == nil {
		r.store.transactions[stored.ID] = stored
		return nil
	}
	key := "transaction/" + stored.ID
	if _, staged := r.tx.baseVersions[key]; !staged {
		r.tx.baseVersions[key] = current.Version
	}
	r.tx.transactions[stored.ID] = stored
	return nil
}

func (r *transactionRepository) ListReadyForAutoRelease(_ context.Context, deliveredBefore time.Time, limit int) ([]*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Transaction
	for _, t := range r.store.transactions {
		if t.Status == entity.StatusDelivered && t.ReleaseState == entity.ReleaseNone &&
			t.DeliveredAt != nil && !t.DeliveredAt.After(deliveredBefore) {
			out = append(out, t.Clone())
		}
	}
	sortTransactions(out, func(t *entity.Transaction) time.Time { return *t.DeliveredAt })
	return truncate(out, limit), nil
}

func (r *transactionRepository) ListByReleaseState(_ context.Context, state entity.ReleaseState, updatedBefore time.Time, limit int) ([]*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Transaction
	for _, t := range r.store.transactions {
		if t.ReleaseState == state && !t.UpdatedAt.After(updatedBefore) {
			out = append(out, t.Clone())
		}
	}
	sortTransactions(out, func(t *entity.Transaction) time.Time { return t.UpdatedAt })
	return truncate(out, limit), nil
}

func truncate[T any](list []T, limit int) []T {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
