package transaction

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/invariant"
)

// CompleteTransaction releases the seller's share of a DELIVERED transaction.
//
// The release runs in three steps. Under the manager the transaction is
// claimed (release state "releasing") and its payout rows are written. The
// payouts are then sent without holding the manager, and finally the
// outcome is recorded under the manager again. A second caller arriving
// while the first is between steps sees "releasing" and gets a conflict.
func (s *Service) CompleteTransaction(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error) {
	if err := s.validator.ValidateID(transactionID); err != nil {
		return nil, s.rejected(entity.OpComplete, transactionID, err)
	}

	err := s.claimRelease(ctx, transactionID, func(txn *entity.Transaction) error {
		if actingUserID != entity.SystemActor {
			if err := invariant.RequireRole(txn, actingUserID, entity.PartyBuyer, entity.OpComplete); err != nil {
				return err
			}
		}
		return txn.BeginRelease(s.timeProvider)
	})
	if err != nil {
		return nil, s.rejected(entity.OpComplete, transactionID, err)
	}

	s.logger.Info("Release started", map[string]any{
		"transaction_id": transactionID,
		"acting_user_id": actingUserID,
	})
	return s.runRelease(ctx, transactionID, entity.OpComplete)
}

// RetryRelease resumes a completion whose payouts did not all go through,
// or one left in "releasing" by a crashed worker whose lease has expired
func (s *Service) RetryRelease(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	if err := s.validator.ValidateID(transactionID); err != nil {
		return nil, s.rejected(entity.OpRetryRelease, transactionID, err)
	}

	err := s.claimRelease(ctx, transactionID, func(txn *entity.Transaction) error {
		// dispute settlements are retried through their dispute
		if txn.Status != entity.StatusDelivered {
			return errs.NewTransitionError(txn.ID, entity.OpRetryRelease, string(txn.Status))
		}
		if txn.ReleaseState == entity.ReleaseInProgress {
			return nil
		}
		return txn.ResumeRelease(s.timeProvider)
	})
	if err != nil {
		return nil, s.rejected(entity.OpRetryRelease, transactionID, err)
	}
	return s.runRelease(ctx, transactionID, entity.OpRetryRelease)
}

// claimRelease applies claim to the locked transaction and writes the payout plan
func (s *Service) claimRelease(ctx context.Context, transactionID string, claim func(txn *entity.Transaction) error) error {
	return s.manager.Execute(ctx, transactionID, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			repo := s.uow.GetTransactionRepository(txCtx)
			txn, err := repo.GetForUpdate(txCtx, transactionID)
			if err != nil {
				return err
			}
			if err := claim(txn); err != nil {
				return err
			}
			if !invariant.ValidateCommission(txn) {
				return errs.NewConflictError(txn.ID, "stored commission split is inconsistent")
			}
			if err := planRelease(txCtx, s.uow.GetPayoutRepository(txCtx), s.timeProvider, txn); err != nil {
				return err
			}
			return repo.Update(txCtx, txn)
		})
	})
}

// runRelease sends the planned payouts and records the outcome
func (s *Service) runRelease(ctx context.Context, transactionID, operation string) (*entity.Transaction, error) {
	start := s.timeProvider.Now()
	_, settleErr := s.settler.Settle(ctx, transactionID)
	if errors.Is(settleErr, errs.ErrLeaseHeld) {
		// another worker owns the payouts and will record the outcome
		return nil, s.rejected(operation, transactionID, settleErr)
	}

	var (
		updated *entity.Transaction
		from    entity.TransactionStatus
	)
	err := s.manager.Execute(context.WithoutCancel(ctx), transactionID, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			repo := s.uow.GetTransactionRepository(txCtx)
			txn, err := repo.GetForUpdate(txCtx, transactionID)
			if err != nil {
				return err
			}
			from = txn.Status
			if txn.ReleaseState != entity.ReleaseInProgress {
				updated = txn
				return nil
			}
			if settleErr == nil {
				err = txn.FinishRelease(s.timeProvider)
			} else {
				err = txn.FailRelease(s.timeProvider)
			}
			if err != nil {
				return err
			}
			if err := repo.Update(txCtx, txn); err != nil {
				return err
			}
			updated = txn
			return nil
		})
	})
	if err != nil {
		s.logger.Error("Failed to record release outcome", map[string]any{
			"transaction_id": transactionID,
			"settle_error":   errString(settleErr),
			"error":          err.Error(),
		})
		if settleErr != nil {
			return nil, s.rejected(operation, transactionID, settleErr)
		}
		return nil, s.rejected(operation, transactionID, err)
	}

	s.metrics.ObserveRelease("completion", s.timeProvider.Since(start).Std())
	if settleErr != nil {
		s.logger.Warn("Release failed, transaction stays delivered", map[string]any{
			"transaction_id": transactionID,
			"error":          settleErr.Error(),
		})
		s.notify(ctx, entity.TransactionEvent(entity.EventReleaseFailed, updated, updated.UpdatedAt))
		return updated, s.rejected(operation, transactionID, settleErr)
	}

	s.logger.Info("Transaction completed", map[string]any{
		"transaction_id": transactionID,
		"seller_amount":  entity.FormatMinorUnits(updated.SellerAmount),
	})
	s.metrics.TransitionApplied(operation, string(from), string(updated.Status))
	s.notify(ctx, entity.TransactionEvent(entity.EventTransactionCompleted, updated, updated.UpdatedAt))
	return updated, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
