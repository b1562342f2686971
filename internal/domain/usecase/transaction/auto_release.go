package transaction

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
)

// AutoReleaseConfig controls the timeout completion of delivered transactions
type AutoReleaseConfig struct {
	GracePeriod time.Duration // how long the buyer has to complete or dispute after delivery
	Interval    time.Duration
	BatchSize   int
}

// AutoReleaser completes DELIVERED transactions on the buyer's behalf once
// the grace period passes without a dispute
type AutoReleaser struct {
	service  *Service
	cfg      AutoReleaseConfig
	logger   coreport.Logger
	stop     chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewAutoReleaser creates a new auto-release worker
func NewAutoReleaser(service *Service, cfg AutoReleaseConfig) *AutoReleaser {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &AutoReleaser{
		service: service,
		cfg:     cfg,
		logger:  service.logger.Named("auto_release"),
		stop:    make(chan struct{}),
	}
}

// Running reports whether the loop is active
func (a *AutoReleaser) Running() bool {
	return a.running.Load()
}

// Start runs the loop until ctx ends or Stop is called. Call in a goroutine.
func (a *AutoReleaser) Start(ctx context.Context) {
	if !a.running.CompareAndSwap(false, true) {
		return
	}
	defer a.running.Store(false)

	a.logger.Info("Auto-release worker started", map[string]any{
		"grace_period": a.cfg.GracePeriod.String(),
		"interval":     a.cfg.Interval.String(),
	})

	ticker := time.NewTicker(a.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.stop:
			return
		case <-ticker.C:
			a.safeRunOnce(ctx)
		}
	}
}

// Stop signals the loop to exit
func (a *AutoReleaser) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
}

func (a *AutoReleaser) safeRunOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Panic in auto-release worker", map[string]any{"panic": fmt.Sprint(r)})
		}
	}()
	a.RunOnce(ctx)
}

// RunOnce completes every transaction past its grace period and returns how many completed
func (a *AutoReleaser) RunOnce(ctx context.Context) int {
	cutoff := a.service.timeProvider.Now().Add(-a.cfg.GracePeriod)
	due, err := a.service.uow.GetTransactionRepository(ctx).ListReadyForAutoRelease(ctx, cutoff, a.cfg.BatchSize)
	if err != nil {
		a.logger.Warn("Failed to list transactions due for auto-release", map[string]any{"error": err.Error()})
		return 0
	}

	released := 0
	for _, txn := range due {
		if ctx.Err() != nil {
			break
		}
		_, err := a.service.CompleteTransaction(ctx, txn.ID, entity.SystemActor)
		switch {
		case err == nil:
			released++
			a.logger.Info("Auto-released transaction", map[string]any{
				"transaction_id": txn.ID,
				"seller_id":      txn.SellerID,
				"amount":         entity.FormatMinorUnits(txn.SellerAmount),
			})
		case errs.IsInvalidTransitionError(err), errs.IsConflictError(err):
			// the buyer completed or disputed it in the meantime
			a.logger.Debug("Skipped auto-release", map[string]any{
				"transaction_id": txn.ID,
				"error":          err.Error(),
			})
		default:
			a.logger.Warn("Failed to auto-release transaction", map[string]any{
				"transaction_id": txn.ID,
				"error":          err.Error(),
			})
		}
	}
	return released
}
