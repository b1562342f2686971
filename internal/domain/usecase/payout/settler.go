// Package payout drives escrow payouts to a confirmed state exactly once.
package payout

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
)

// Config tunes settlement
type Config struct {
	LeaseTimeout   time.Duration
	MaxAttempts    int
	RetryBaseDelay time.Duration
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		LeaseTimeout:   2 * time.Minute,
		MaxAttempts:    3,
		RetryBaseDelay: 200 * time.Millisecond,
	}
}

// Result lists payout references by outcome
type Result struct {
	Confirmed []string
	Failed    []string
	Unknown   []string
}

// Settled reports whether every payout is confirmed
func (r *Result) Settled() bool {
	return len(r.Failed) == 0 && len(r.Unknown) == 0
}

// State summarizes the result for a dispute record
func (r *Result) State() entity.SettlementState {
	switch {
	case r.Settled():
		return entity.SettlementDone
	case len(r.Confirmed) > 0:
		return entity.SettlementPartial
	default:
		return entity.SettlementPending
	}
}

func (r *Result) outstanding() []string {
	return append(append([]string(nil), r.Failed...), r.Unknown...)
}

// Settler moves money for the payout rows of one owner. It never runs inside
// a database transaction: every payout state change is committed before the
// next provider call so a crash leaves an accurate record.
type Settler struct {
	uow          persistence.UnitOfWork
	leases       persistence.ReleaseLeaseRepository
	payouts      external.PayoutService
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder
	cfg          Config
}

// NewSettler creates a new settler
func NewSettler(
	uow persistence.UnitOfWork,
	leases persistence.ReleaseLeaseRepository,
	payouts external.PayoutService,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
	cfg Config,
) *Settler {
	if cfg.LeaseTimeout <= 0 {
		cfg.LeaseTimeout = DefaultConfig().LeaseTimeout
	}
	return &Settler{
		uow:          uow,
		leases:       leases,
		payouts:      payouts,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger.Named("payout"),
		metrics:      metrics,
		cfg:          cfg,
	}
}

// Settle drives every payout owned by ownerID towards confirmed.
// It returns ErrLeaseHeld when another caller is already settling ownerID,
// and a PayoutError when any payout is still outstanding afterwards.
func (s *Settler) Settle(ctx context.Context, ownerID string) (*Result, error) {
	holder := s.ids.NewID()
	if err := s.leases.AcquireLease(ctx, ownerID, holder, s.cfg.LeaseTimeout); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.leases.ReleaseLease(context.WithoutCancel(ctx), ownerID, holder); err != nil {
			s.logger.Warn("Failed to release settlement lease", map[string]any{
				"owner_id": ownerID,
				"error":    err.Error(),
			})
		}
	}()

	payouts, err := s.uow.GetPayoutRepository(ctx).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var firstErr error
	for _, p := range payouts {
		if p.IsConfirmed() {
			result.Confirmed = append(result.Confirmed, p.Reference)
			continue
		}

		err := s.settleOne(ctx, p)
		switch {
		case err == nil:
			result.Confirmed = append(result.Confirmed, p.Reference)
		case p.State == entity.PayoutFailed:
			result.Failed = append(result.Failed, p.Reference)
		default:
			result.Unknown = append(result.Unknown, p.Reference)
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if !result.Settled() {
		return result, errs.NewPayoutError(ownerID, result.outstanding(), firstErr)
	}
	return result, nil
}

// settleOne moves a single payout. The attempted state is durable before
// the provider is called.
func (s *Settler) settleOne(ctx context.Context, p *entity.Payout) error {
	if p.IsInternal() {
		// platform commission stays on the platform's books
		p.MarkConfirmed(s.timeProvider)
		s.metrics.PayoutAttempted(string(p.Role), "booked")
		return s.save(ctx, p)
	}

	p.MarkAttempted(s.timeProvider)
	if err := s.save(ctx, p); err != nil {
		return err
	}

	err := s.transferWithRetry(ctx, p.RecipientID, p.Amount, p.Reference)
	switch {
	case err == nil:
		p.MarkConfirmed(s.timeProvider)
		s.metrics.PayoutAttempted(string(p.Role), "confirmed")
		if saveErr := s.save(ctx, p); saveErr != nil {
			// money moved but the record says attempted; one more try
			if retryErr := s.save(context.WithoutCancel(ctx), p); retryErr != nil {
				s.logger.Error("CRITICAL: payout confirmed by provider but not recorded", map[string]any{
					"reference":    p.Reference,
					"recipient_id": p.RecipientID,
					"amount":       p.Amount,
					"error":        retryErr.Error(),
				})
				return retryErr
			}
		}
		s.logger.Info("Payout confirmed", map[string]any{
			"reference":    p.Reference,
			"recipient_id": p.RecipientID,
			"amount":       entity.FormatMinorUnits(p.Amount),
		})
		return nil

	case errors.Is(err, external.ErrPayoutDeclined):
		p.MarkFailed(err.Error(), s.timeProvider)
		s.metrics.PayoutAttempted(string(p.Role), "declined")
		s.logger.Warn("Payout declined", map[string]any{
			"reference": p.Reference,
			"error":     err.Error(),
		})

	default:
		p.MarkUnknown(err.Error(), s.timeProvider)
		s.metrics.PayoutAttempted(string(p.Role), "unknown")
		s.logger.Error("Payout outcome unknown", map[string]any{
			"reference": p.Reference,
			"attempts":  p.Attempts,
			"error":     err.Error(),
		})
	}

	if saveErr := s.save(context.WithoutCancel(ctx), p); saveErr != nil {
		s.logger.Error("Failed to record payout outcome", map[string]any{
			"reference": p.Reference,
			"error":     saveErr.Error(),
		})
	}
	return err
}

func (s *Settler) save(ctx context.Context, p *entity.Payout) error {
	return s.uow.Do(ctx, func(txCtx context.Context) error {
		return s.uow.GetPayoutRepository(txCtx).Update(txCtx, p)
	})
}

// Plan records the payouts a settlement will need. It must run inside the
// caller's unit of work so the rows commit with the state change that
// requested them. Zero amounts produce no row.
func Plan(ctx context.Context, repo persistence.PayoutRepository, timeProvider coreport.TimeProvider, payouts ...PlannedPayout) error {
	for _, pp := range payouts {
		if pp.Amount == 0 {
			continue
		}
		p, err := entity.NewPayout(pp.OwnerID, pp.TransactionID, pp.Role, pp.RecipientID, pp.Amount, timeProvider)
		if err != nil {
			return err
		}
		if _, err := repo.CreateIfAbsent(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// PlannedPayout describes one payout to create
type PlannedPayout struct {
	OwnerID       string
	TransactionID string
	Role          entity.PayoutRole
	RecipientID   string
	Amount        int64
}
