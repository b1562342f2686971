// Package dispute mediates buyer and seller disagreements on escrow transactions.
package dispute

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/invariant"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/payout"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/transaction"
)

// Dependencies are the collaborators of the dispute engine. Manager must be
// the one the transaction engine uses: dispute operations are serialized
// under their transaction's ID.
type Dependencies struct {
	UnitOfWork   persistence.UnitOfWork
	Manager      *transaction.TransactionManager
	Settler      *payout.Settler
	Access       external.AccessControl
	Notifier     external.Notifier
	IDs          coreport.IDGenerator
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
	Metrics      coreport.MetricsRecorder
}

// Service is the dispute engine
type Service struct {
	uow          persistence.UnitOfWork
	manager      *transaction.TransactionManager
	settler      *payout.Settler
	access       external.AccessControl
	notifier     external.Notifier
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder
}

var _ usecase.DisputeUseCase = (*Service)(nil)

// NewDisputeService creates a new dispute service
func NewDisputeService(deps Dependencies) *Service {
	return &Service{
		uow:          deps.UnitOfWork,
		manager:      deps.Manager,
		settler:      deps.Settler,
		access:       deps.Access,
		notifier:     deps.Notifier,
		ids:          deps.IDs,
		timeProvider: deps.TimeProvider,
		logger:       deps.Logger.Named("dispute"),
		metrics:      deps.Metrics,
	}
}

// OpenDispute freezes a non-terminal transaction for admin review
func (s *Service) OpenDispute(ctx context.Context, req usecase.OpenDisputeRequest) (*entity.Dispute, error) {
	if req.TransactionID == "" {
		return nil, s.rejected(entity.OpOpenDispute, "", errs.ErrInvalidID)
	}

	var (
		opened *entity.Dispute
		txn    *entity.Transaction
	)
	err := s.manager.Execute(ctx, req.TransactionID, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			txRepo := s.uow.GetTransactionRepository(txCtx)
			disputeRepo := s.uow.GetDisputeRepository(txCtx)

			locked, err := txRepo.GetForUpdate(txCtx, req.TransactionID)
			if err != nil {
				return err
			}
			party, err := invariant.RequireParty(locked, req.ActingUserID, entity.OpOpenDispute)
			if err != nil {
				return err
			}
			if invariant.IsTerminal(locked.Status) {
				return errs.NewTransitionError(locked.ID, entity.OpOpenDispute, string(locked.Status))
			}

			active, err := disputeRepo.GetActiveByTransactionID(txCtx, locked.ID)
			switch {
			case err == nil:
				return errs.NewConflictError(locked.ID, "dispute "+active.ID+" is already open")
			case !errors.Is(err, errs.ErrDisputeNotFound):
				return err
			}

			d, err := entity.NewDispute(s.ids.NewID(), locked, req.ActingUserID, party, req.Reason, req.Description, s.timeProvider)
			if err != nil {
				return err
			}
			if err := locked.MarkDisputed(s.timeProvider); err != nil {
				return err
			}
			if err := disputeRepo.Create(txCtx, d); err != nil {
				return err
			}
			if err := txRepo.Update(txCtx, locked); err != nil {
				return err
			}
			opened, txn = d, locked
			return nil
		})
	})
	if err != nil {
		return nil, s.rejected(entity.OpOpenDispute, req.TransactionID, err)
	}

	s.logger.Info("Dispute opened", map[string]any{
		"dispute_id":      opened.ID,
		"transaction_id":  txn.ID,
		"opened_by":       opened.OpenedBy,
		"reason":          opened.Reason,
		"previous_status": opened.PreviousStatus,
	})
	s.metrics.TransitionApplied(entity.OpOpenDispute, string(opened.PreviousStatus), string(txn.Status))
	s.metrics.DisputeStatusChanged(string(opened.Status))
	s.notify(ctx, entity.DisputeEvent(entity.EventDisputeOpened, opened, txn, opened.CreatedAt))
	return opened, nil
}

// SubmitEvidence stores the caller's evidence bundle, replacing an earlier one
func (s *Service) SubmitEvidence(ctx context.Context, disputeID, actingUserID string, bundle entity.EvidenceBundle) (*entity.Dispute, error) {
	return s.mutate(ctx, disputeID, entity.OpSubmitEvidence, entity.EventDisputeEvidence,
		func(d *entity.Dispute, txn *entity.Transaction) error {
			party, err := invariant.RequireParty(txn, actingUserID, entity.OpSubmitEvidence)
			if err != nil {
				return err
			}
			return d.SubmitEvidence(party, bundle, s.timeProvider)
		})
}

// BeginReview marks an open dispute as picked up by an admin
func (s *Service) BeginReview(ctx context.Context, disputeID, adminID string) (*entity.Dispute, error) {
	if err := s.requireAdmin(ctx, adminID, entity.OpBeginReview); err != nil {
		return nil, s.rejected(entity.OpBeginReview, disputeID, err)
	}
	return s.mutate(ctx, disputeID, entity.OpBeginReview, entity.EventDisputeUnderReview,
		func(d *entity.Dispute, _ *entity.Transaction) error {
			return d.BeginReview(s.timeProvider)
		})
}

// AddAdminNotes replaces the dispute's internal notes at any status
func (s *Service) AddAdminNotes(ctx context.Context, disputeID, adminID, notes string) (*entity.Dispute, error) {
	const op = "addAdminNotes"
	if err := s.requireAdmin(ctx, adminID, op); err != nil {
		return nil, s.rejected(op, disputeID, err)
	}
	return s.mutate(ctx, disputeID, op, "", func(d *entity.Dispute, _ *entity.Transaction) error {
		return d.SetAdminNotes(notes, s.timeProvider)
	})
}

// CloseDispute ends an active dispute without moving money and hands the
// transaction back to the status it had when the dispute opened, so the
// parties can carry on, cancel, or dispute again.
func (s *Service) CloseDispute(ctx context.Context, disputeID, adminID, note string) (*entity.Dispute, error) {
	if err := s.requireAdmin(ctx, adminID, entity.OpClose); err != nil {
		return nil, s.rejected(entity.OpClose, disputeID, err)
	}
	return s.mutate(ctx, disputeID, entity.OpClose, entity.EventDisputeClosed,
		func(d *entity.Dispute, txn *entity.Transaction) error {
			if err := d.Close(adminID, note, s.timeProvider); err != nil {
				return err
			}
			return txn.LiftDispute(d.PreviousStatus, s.timeProvider)
		})
}

// GetDispute returns a dispute to a party of its transaction or an admin
func (s *Service) GetDispute(ctx context.Context, disputeID, actingUserID string) (*entity.Dispute, error) {
	if disputeID == "" {
		return nil, errs.ErrInvalidID
	}
	d, err := s.uow.GetDisputeRepository(ctx).GetByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if err := s.requireVisibility(ctx, d.TransactionID, actingUserID); err != nil {
		return nil, err
	}
	return d, nil
}

// GetDisputeForTransaction returns the most recent dispute of a transaction
func (s *Service) GetDisputeForTransaction(ctx context.Context, transactionID, actingUserID string) (*entity.Dispute, error) {
	if transactionID == "" {
		return nil, errs.ErrInvalidID
	}
	if err := s.requireVisibility(ctx, transactionID, actingUserID); err != nil {
		return nil, err
	}
	return s.uow.GetDisputeRepository(ctx).GetLatestByTransactionID(ctx, transactionID)
}

// mutate applies change to a locked dispute and its transaction under the
// transaction's key. An empty event skips notification.
func (s *Service) mutate(
	ctx context.Context,
	disputeID, operation string,
	event entity.EventType,
	change func(d *entity.Dispute, txn *entity.Transaction) error,
) (*entity.Dispute, error) {
	transactionID, err := s.transactionOf(ctx, disputeID)
	if err != nil {
		return nil, s.rejected(operation, disputeID, err)
	}

	var (
		updated *entity.Dispute
		txn     *entity.Transaction
		from    entity.DisputeStatus
		txFrom  entity.TransactionStatus
	)
	err = s.manager.Execute(ctx, transactionID, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			disputeRepo := s.uow.GetDisputeRepository(txCtx)
			d, err := disputeRepo.GetForUpdate(txCtx, disputeID)
			if err != nil {
				return err
			}
			txRepo := s.uow.GetTransactionRepository(txCtx)
			t, err := txRepo.GetForUpdate(txCtx, transactionID)
			if err != nil {
				return err
			}
			from, txFrom = d.Status, t.Status
			if err := change(d, t); err != nil {
				return err
			}
			if err := disputeRepo.Update(txCtx, d); err != nil {
				return err
			}
			if t.Status != txFrom {
				if err := txRepo.Update(txCtx, t); err != nil {
					return err
				}
			}
			updated, txn = d, t
			return nil
		})
	})
	if err != nil {
		return nil, s.rejected(operation, disputeID, err)
	}

	s.logger.Info("Dispute updated", map[string]any{
		"dispute_id":     disputeID,
		"transaction_id": transactionID,
		"operation":      operation,
		"from":           from,
		"to":             updated.Status,
	})
	if from != updated.Status {
		s.metrics.DisputeStatusChanged(string(updated.Status))
	}
	if txFrom != txn.Status {
		s.metrics.TransitionApplied(operation, string(txFrom), string(txn.Status))
	}
	if event != "" {
		s.notify(ctx, entity.DisputeEvent(event, updated, txn, updated.UpdatedAt))
	}
	return updated, nil
}

// transactionOf looks up the transaction a dispute belongs to. The link
// never changes, so no lock is needed.
func (s *Service) transactionOf(ctx context.Context, disputeID string) (string, error) {
	if disputeID == "" {
		return "", errs.ErrInvalidID
	}
	d, err := s.uow.GetDisputeRepository(ctx).GetByID(ctx, disputeID)
	if err != nil {
		return "", err
	}
	return d.TransactionID, nil
}

func (s *Service) requireAdmin(ctx context.Context, userID, operation string) error {
	if userID == "" {
		return errs.NewAuthorizationError(userID, operation, "admin")
	}
	isAdmin, err := s.access.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return errs.NewAuthorizationError(userID, operation, "admin")
	}
	return nil
}

func (s *Service) requireVisibility(ctx context.Context, transactionID, actingUserID string) error {
	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if _, ok := txn.PartyOf(actingUserID); ok {
		return nil
	}
	return s.requireAdmin(ctx, actingUserID, "viewDispute")
}

func (s *Service) rejected(operation, id string, err error) error {
	fields := map[string]any{
		"id":        id,
		"operation": operation,
		"error":     err.Error(),
	}
	var logFielder interface{ LogFields() map[string]any }
	if errors.As(err, &logFielder) {
		for k, v := range logFielder.LogFields() {
			fields[k] = v
		}
	}

	code := errs.ErrorCode(err)
	if code >= errs.CodeInternalServer {
		s.logger.Error("Dispute operation failed", fields)
	} else {
		s.logger.Debug("Dispute operation rejected", fields)
	}
	s.metrics.TransitionRejected(operation, code)
	return err
}

func (s *Service) notify(ctx context.Context, event entity.Event) {
	s.notifier.Notify(context.WithoutCancel(ctx), event)
}
