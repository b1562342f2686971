// Package memory keeps escrow state in process memory. It backs tests and
// single-instance development runs; it shares the gorm adapter's contracts
// including version checks and the one-active-dispute rule.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
)

type contextKey string

const txKey contextKey = "memory_tx"

var errNoTransaction = errors.New("no memory transaction in context")

// Store holds committed records
type Store struct {
	mu           sync.Mutex
	transactions map[string]*entity.Transaction
	disputes     map[string]*entity.Dispute
	payouts      map[string]*entity.Payout
	leases       map[string]lease
	timeProvider coreport.TimeProvider
}

type lease struct {
	holder    string
	expiresAt time.Time
}

// NewStore creates an empty store
func NewStore(timeProvider coreport.TimeProvider) *Store {
	return &Store{
		transactions: make(map[string]*entity.Transaction),
		disputes:     make(map[string]*entity.Dispute),
		payouts:      make(map[string]*entity.Payout),
		leases:       make(map[string]lease),
		timeProvider: timeProvider,
	}
}

// memoryTx stages writes until commit
type memoryTx struct {
	mu           sync.Mutex
	transactions map[string]*entity.Transaction
	disputes     map[string]*entity.Dispute
	payouts      map[string]*entity.Payout
	baseVersions map[string]int64 // "kind/id" -> stored version at first write, -1 when new
	done         bool
}

func newMemoryTx() *memoryTx {
	return &memoryTx{
		transactions: make(map[string]*entity.Transaction),
		disputes:     make(map[string]*entity.Dispute),
		payouts:      make(map[string]*entity.Payout),
		baseVersions: make(map[string]int64),
	}
}

func txFromContext(ctx context.Context) *memoryTx {
	if tx, ok := ctx.Value(txKey).(*memoryTx); ok {
		return tx
	}
	return nil
}

// UnitOfWork implements persistence.UnitOfWork over a Store
type UnitOfWork struct {
	store *Store
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work over store
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return context.WithValue(ctx, txKey, newMemoryTx()), nil
}

// Commit applies staged writes if no record moved on since it was read
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return errNoTransaction
	}
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return errNoTransaction
	}
	tx.done = true

	for id := range tx.transactions {
		if err := checkBase(tx, "transaction/"+id, versionOf(s.transactions[id])); err != nil {
			return err
		}
	}
	for id := range tx.disputes {
		if err := checkBase(tx, "dispute/"+id, disputeVersionOf(s.disputes[id])); err != nil {
			return err
		}
	}
	for id, d := range tx.disputes {
		if tx.baseVersions["dispute/"+id] == -1 && d.Status.IsActive() && s.activeDisputeLocked(d.TransactionID, id) != nil {
			return errs.NewConflictError(d.TransactionID, "an active dispute already exists")
		}
	}
	for ref := range tx.payouts {
		if tx.baseVersions["payout/"+ref] == -1 {
			if _, exists := s.payouts[ref]; exists {
				delete(tx.payouts, ref)
			}
		}
	}

	for id, t := range tx.transactions {
		s.transactions[id] = t.Clone()
	}
	for id, d := range tx.disputes {
		s.disputes[id] = d.Clone()
	}
	for ref, p := range tx.payouts {
		s.payouts[ref] = p.Clone()
	}
	return nil
}

func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return errNoTransaction
	}
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.done = true
	return nil
}

// Do runs fn in a fresh staged transaction
func (u *UnitOfWork) Do(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = u.Rollback(txCtx)
			panic(r)
		}
	}()
	if err := fn(txCtx); err != nil {
		_ = u.Rollback(txCtx)
		return err
	}
	return u.Commit(txCtx)
}

func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return &transactionRepository{store: u.store, tx: txFromContext(ctx)}
}

func (u *UnitOfWork) GetDisputeRepository(ctx context.Context) persistence.DisputeRepository {
	return &disputeRepository{store: u.store, tx: txFromContext(ctx)}
}

func (u *UnitOfWork) GetPayoutRepository(ctx context.Context) persistence.PayoutRepository {
	return &payoutRepository{store: u.store, tx: txFromContext(ctx)}
}

func checkBase(tx *memoryTx, key string, current int64) error {
	base, ok := tx.baseVersions[key]
	if !ok {
		return nil
	}
	if base != current {
		return errs.NewConflictError(key, "record changed before commit")
	}
	return nil
}

func versionOf(t *entity.Transaction) int64 {
	if t == nil {
		return -1
	}
	return t.Version
}

func disputeVersionOf(d *entity.Dispute) int64 {
	if d == nil {
		return -1
	}
	return d.Version
}

// activeDisputeLocked returns another active dispute of transactionID. s.mu must be held.
func (s *Store) activeDisputeLocked(transactionID, exceptID string) *entity.Dispute {
	for id, d := range s.disputes {
		if id != exceptID && d.TransactionID == transactionID && d.Status.IsActive() {
			return d
		}
	}
	return nil
}

func sortTransactions(list []*entity.Transaction, by func(*entity.Transaction) time.Time) {
	sort.Slice(list, func(i, j int) bool {
		ti, tj := by(list[i]), by(list[j])
		if ti.Equal(tj) {
			return list[i].ID < list[j].ID
		}
		return ti.Before(tj)
	})
}
