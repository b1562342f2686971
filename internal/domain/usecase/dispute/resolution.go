package dispute

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/invariant"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/payout"
)

// inferOutcome picks the transaction status a split implies when the admin
// did not choose one explicitly
func inferOutcome(req usecase.ResolveDisputeRequest) entity.DisputeOutcome {
	if req.Outcome != "" {
		return req.Outcome
	}
	if req.SellerAmount == 0 {
		return entity.OutcomeCancel
	}
	return entity.OutcomeComplete
}

// ResolveDispute records an admin's split, settles the transaction and pays
// both sides. The split is checked against the transaction amount before
// anything is written; a mismatch leaves the dispute untouched.
//
// When the payouts cannot all be sent the resolved dispute is returned
// together with a payout error. RetryPayouts finishes the job later.
func (s *Service) ResolveDispute(ctx context.Context, req usecase.ResolveDisputeRequest) (*entity.Dispute, error) {
	if err := s.requireAdmin(ctx, req.AdminID, entity.OpResolve); err != nil {
		return nil, s.rejected(entity.OpResolve, req.DisputeID, err)
	}
	transactionID, err := s.transactionOf(ctx, req.DisputeID)
	if err != nil {
		return nil, s.rejected(entity.OpResolve, req.DisputeID, err)
	}

	outcome := inferOutcome(req)
	var from entity.DisputeStatus
	err = s.manager.Execute(ctx, transactionID, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			disputeRepo := s.uow.GetDisputeRepository(txCtx)
			txRepo := s.uow.GetTransactionRepository(txCtx)

			d, err := disputeRepo.GetForUpdate(txCtx, req.DisputeID)
			if err != nil {
				return err
			}
			if !d.Status.IsActive() {
				return errs.NewTransitionError(d.ID, entity.OpResolve, string(d.Status))
			}
			txn, err := txRepo.GetForUpdate(txCtx, transactionID)
			if err != nil {
				return err
			}
			if err := invariant.RequireSplit(d.ID, txn.Amount, req.RefundAmount, req.SellerAmount); err != nil {
				return err
			}

			from = d.Status
			if err := d.Resolve(req.AdminID, outcome, req.Resolution, req.RefundAmount, req.SellerAmount, s.timeProvider); err != nil {
				return err
			}
			if err := txn.SettleDispute(outcome, s.timeProvider); err != nil {
				return err
			}
			err = payout.Plan(txCtx, s.uow.GetPayoutRepository(txCtx), s.timeProvider,
				payout.PlannedPayout{
					OwnerID:       d.ID,
					TransactionID: txn.ID,
					Role:          entity.PayoutToBuyer,
					RecipientID:   txn.BuyerID,
					Amount:        req.RefundAmount,
				},
				payout.PlannedPayout{
					OwnerID:       d.ID,
					TransactionID: txn.ID,
					Role:          entity.PayoutToSeller,
					RecipientID:   txn.SellerID,
					Amount:        req.SellerAmount,
				},
			)
			if err != nil {
				return err
			}
			if err := disputeRepo.Update(txCtx, d); err != nil {
				return err
			}
			return txRepo.Update(txCtx, txn)
		})
	})
	if err != nil {
		return nil, s.rejected(entity.OpResolve, req.DisputeID, err)
	}

	s.logger.Info("Dispute resolved", map[string]any{
		"dispute_id":     req.DisputeID,
		"transaction_id": transactionID,
		"admin_id":       req.AdminID,
		"outcome":        outcome,
		"refund_amount":  entity.FormatMinorUnits(req.RefundAmount),
		"seller_amount":  entity.FormatMinorUnits(req.SellerAmount),
		"from":           from,
	})
	s.metrics.DisputeStatusChanged(string(entity.DisputeResolved))
	s.metrics.TransitionApplied(entity.OpSettleDispute, string(entity.StatusDisputed), outcomeStatus(outcome))

	return s.settle(ctx, req.DisputeID, transactionID, entity.OpResolve, entity.EventDisputeResolved)
}

// RetryPayouts resends whatever a resolution still owes
func (s *Service) RetryPayouts(ctx context.Context, disputeID string) (*entity.Dispute, error) {
	transactionID, err := s.transactionOf(ctx, disputeID)
	if err != nil {
		return nil, s.rejected(entity.OpRetryPayouts, disputeID, err)
	}

	err = s.manager.Execute(ctx, transactionID, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			d, err := s.uow.GetDisputeRepository(txCtx).GetForUpdate(txCtx, disputeID)
			if err != nil {
				return err
			}
			if !d.NeedsSettlement() {
				return errs.NewTransitionError(d.ID, entity.OpRetryPayouts, string(d.Status)+"/"+string(d.Settlement))
			}
			txRepo := s.uow.GetTransactionRepository(txCtx)
			txn, err := txRepo.GetForUpdate(txCtx, transactionID)
			if err != nil {
				return err
			}
			if txn.ReleaseState != entity.ReleaseFailed {
				return nil
			}
			if err := txn.ResumeRelease(s.timeProvider); err != nil {
				return err
			}
			return txRepo.Update(txCtx, txn)
		})
	})
	if err != nil {
		return nil, s.rejected(entity.OpRetryPayouts, disputeID, err)
	}
	return s.settle(ctx, disputeID, transactionID, entity.OpRetryPayouts, entity.EventDisputeResolved)
}

// settle sends the dispute's payouts outside the manager, then records
// the outcome on both the dispute and its transaction
func (s *Service) settle(ctx context.Context, disputeID, transactionID, operation string, event entity.EventType) (*entity.Dispute, error) {
	start := s.timeProvider.Now()
	result, settleErr := s.settler.Settle(ctx, disputeID)
	if errors.Is(settleErr, errs.ErrLeaseHeld) {
		return nil, s.rejected(operation, disputeID, settleErr)
	}

	var (
		updated *entity.Dispute
		txn     *entity.Transaction
	)
	err := s.manager.Execute(context.WithoutCancel(ctx), transactionID, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			disputeRepo := s.uow.GetDisputeRepository(txCtx)
			txRepo := s.uow.GetTransactionRepository(txCtx)

			d, err := disputeRepo.GetForUpdate(txCtx, disputeID)
			if err != nil {
				return err
			}
			t, err := txRepo.GetForUpdate(txCtx, transactionID)
			if err != nil {
				return err
			}

			state := entity.SettlementPending
			if result != nil {
				state = result.State()
			}
			d.RecordSettlement(state, s.timeProvider)
			if err := disputeRepo.Update(txCtx, d); err != nil {
				return err
			}

			if t.ReleaseState == entity.ReleaseInProgress {
				if settleErr == nil {
					err = t.FinishRelease(s.timeProvider)
				} else {
					err = t.FailRelease(s.timeProvider)
				}
				if err != nil {
					return err
				}
				if err := txRepo.Update(txCtx, t); err != nil {
					return err
				}
			}
			updated, txn = d, t
			return nil
		})
	})
	if err != nil {
		s.logger.Error("Failed to record dispute settlement", map[string]any{
			"dispute_id": disputeID,
			"error":      err.Error(),
		})
		if settleErr != nil {
			return nil, s.rejected(operation, disputeID, settleErr)
		}
		return nil, s.rejected(operation, disputeID, err)
	}

	s.metrics.ObserveRelease("dispute", s.timeProvider.Since(start).Std())
	s.notify(ctx, entity.DisputeEvent(event, updated, txn, updated.UpdatedAt))
	if settleErr != nil {
		s.logger.Warn("Dispute payouts outstanding", map[string]any{
			"dispute_id": disputeID,
			"settlement": updated.Settlement,
			"error":      settleErr.Error(),
		})
		return updated, s.rejected(operation, disputeID, settleErr)
	}
	return updated, nil
}

func outcomeStatus(outcome entity.DisputeOutcome) string {
	if outcome == entity.OutcomeCancel {
		return string(entity.StatusCancelled)
	}
	return string(entity.StatusCompleted)
}
