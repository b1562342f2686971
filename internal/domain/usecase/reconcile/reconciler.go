// Package reconcile re-drives settlements that stopped before every payout was confirmed.
package reconcile

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
)

// Config controls the reconciliation loop
type Config struct {
	Interval time.Duration
	// StaleAfter is how long a release may sit untouched before it is picked
	// up. It should exceed the settlement lease timeout.
	StaleAfter time.Duration
	BatchSize  int
}

// Report counts what one pass did
type Report struct {
	Retried int
	Settled int
	Failed  int
}

// Reconciler periodically retries failed or interrupted releases
type Reconciler struct {
	uow          persistence.UnitOfWork
	transactions usecase.TransactionUseCase
	disputes     usecase.DisputeUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
	stop         chan struct{}
	stopOnce     sync.Once
	running      atomic.Bool
}

// NewReconciler creates a new reconciler
func NewReconciler(
	uow persistence.UnitOfWork,
	transactions usecase.TransactionUseCase,
	disputes usecase.DisputeUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Reconciler {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Reconciler{
		uow:          uow,
		transactions: transactions,
		disputes:     disputes,
		timeProvider: timeProvider,
		logger:       logger.Named("reconciler"),
		cfg:          cfg,
		stop:         make(chan struct{}),
	}
}

// Running reports whether the loop is active
func (r *Reconciler) Running() bool {
	return r.running.Load()
}

// Start runs the loop until ctx ends or Stop is called. Call in a goroutine.
func (r *Reconciler) Start(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	defer r.running.Store(false)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stop:
			return
		case <-ticker.C:
			r.safeRunOnce(ctx)
		}
	}
}

// Stop signals the loop to exit
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Reconciler) safeRunOnce(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Panic in reconciler", map[string]any{"panic": fmt.Sprint(p)})
		}
	}()
	report := r.RunOnce(ctx)
	if report.Retried > 0 {
		r.logger.Info("Reconciliation pass finished", map[string]any{
			"retried": report.Retried,
			"settled": report.Settled,
			"failed":  report.Failed,
		})
	}
}

// RunOnce retries every stale release once
func (r *Reconciler) RunOnce(ctx context.Context) Report {
	var report Report
	cutoff := r.timeProvider.Now().Add(-r.cfg.StaleAfter)
	txRepo := r.uow.GetTransactionRepository(ctx)

	for _, state := range []entity.ReleaseState{entity.ReleaseInProgress, entity.ReleaseFailed} {
		stuck, err := txRepo.ListByReleaseState(ctx, state, cutoff, r.cfg.BatchSize)
		if err != nil {
			r.logger.Warn("Failed to list stuck releases", map[string]any{
				"release_state": state,
				"error":         err.Error(),
			})
			continue
		}
		for _, txn := range stuck {
			// dispute settlements are picked up below
			if txn.Status != entity.StatusDelivered {
				continue
			}
			report.Retried++
			_, err := r.transactions.RetryRelease(ctx, txn.ID)
			r.record(&report, "transaction_id", txn.ID, err)
		}
	}

	unsettled, err := r.uow.GetDisputeRepository(ctx).ListUnsettled(ctx, cutoff, r.cfg.BatchSize)
	if err != nil {
		r.logger.Warn("Failed to list unsettled disputes", map[string]any{"error": err.Error()})
		return report
	}
	for _, d := range unsettled {
		report.Retried++
		_, err := r.disputes.RetryPayouts(ctx, d.ID)
		r.record(&report, "dispute_id", d.ID, err)
	}
	return report
}

func (r *Reconciler) record(report *Report, key, id string, err error) {
	switch {
	case err == nil:
		report.Settled++
	case errs.IsConflictError(err):
		// someone else holds the lease
		r.logger.Debug("Settlement busy, skipping", map[string]any{key: id})
	default:
		report.Failed++
		r.logger.Warn("Settlement retry failed", map[string]any{key: id, "error": err.Error()})
	}
}
