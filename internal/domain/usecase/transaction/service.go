package transaction

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
)

// Config holds the business settings of the transaction engine
type Config struct {
	CommissionBasisPoints int64
}

// Dependencies are the collaborators of the transaction engine
type Dependencies struct {
	UnitOfWork   persistence.UnitOfWork
	Manager      *TransactionManager
	Settler      *payout.Settler
	Catalog      external.ItemCatalog
	Access       external.AccessControl
	Notifier     external.Notifier
	IDs          coreport.IDGenerator
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
	Metrics      coreport.MetricsRecorder
}

// Service is the transaction engine. Every mutation of one transaction runs
// through the manager under that transaction's ID and re-reads the row with
// a lock, so checks and writes never interleave.
type Service struct {
	uow          persistence.UnitOfWork
	manager      *TransactionManager
	settler      *payout.Settler
	catalog      external.ItemCatalog
	access       external.AccessControl
	notifier     external.Notifier
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder
	validator    *TransactionValidator
	cfg          Config
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(deps Dependencies, cfg Config) *Service {
	return &Service{
		uow:          deps.UnitOfWork,
		manager:      deps.Manager,
		settler:      deps.Settler,
		catalog:      deps.Catalog,
		access:       deps.Access,
		notifier:     deps.Notifier,
		ids:          deps.IDs,
		timeProvider: deps.TimeProvider,
		logger:       deps.Logger.Named("transaction"),
		metrics:      deps.Metrics,
		validator:    NewTransactionValidator(),
		cfg:          cfg,
	}
}

// CreateTransaction opens a PENDING transaction for the seller who listed the item
func (s *Service) CreateTransaction(ctx context.Context, req usecase.CreateTransactionRequest) (*entity.Transaction, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, s.rejected(entity.OpCreate, "", err)
	}

	item, err := s.catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, s.rejected(entity.OpCreate, "", err)
	}
	if err := s.validator.ValidateAgainstItem(req, item); err != nil {
		return nil, s.rejected(entity.OpCreate, "", err)
	}

	txn, err := entity.NewTransaction(
		s.ids.NewID(),
		req.BuyerID,
		item.SellerID,
		item.ID,
		item.Price,
		s.cfg.CommissionBasisPoints,
		req.Delivery,
		s.timeProvider,
	)
	if err != nil {
		return nil, s.rejected(entity.OpCreate, "", err)
	}

	err = s.uow.Do(ctx, func(txCtx context.Context) error {
		return s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn)
	})
	if err != nil {
		return nil, s.rejected(entity.OpCreate, txn.ID, err)
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": txn.ID,
		"buyer_id":       txn.BuyerID,
		"seller_id":      txn.SellerID,
		"item_id":        txn.ItemID,
		"amount":         entity.FormatMinorUnits(txn.Amount),
		"commission":     entity.FormatMinorUnits(txn.Commission),
	})
	s.metrics.TransitionApplied(entity.OpCreate, "", string(txn.Status))
	s.notify(ctx, entity.TransactionEvent(entity.EventTransactionCreated, txn, txn.CreatedAt))
	return txn, nil
}

// ConfirmPayment records that the buyer's funds are held. The buyer or the
// payment system may confirm.
func (s *Service) ConfirmPayment(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error) {
	return s.transition(ctx, transactionID, entity.OpConfirmPay, entity.EventTransactionPaid, func(txn *entity.Transaction) error {
		if actingUserID != entity.SystemActor {
			if err := invariant.RequireRole(txn, actingUserID, entity.PartyBuyer, entity.OpConfirmPay); err != nil {
				return err
			}
		}
		return txn.MarkPaid(s.timeProvider)
	})
}

// MarkShipped is performed by the seller
func (s *Service) MarkShipped(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error) {
	return s.transition(ctx, transactionID, entity.OpShip, entity.EventTransactionShipped, func(txn *entity.Transaction) error {
		if err := invariant.RequireRole(txn, actingUserID, entity.PartySeller, entity.OpShip); err != nil {
			return err
		}
		return txn.MarkShipped(s.timeProvider)
	})
}

// MarkDelivered is performed by the buyer
func (s *Service) MarkDelivered(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error) {
	return s.transition(ctx, transactionID, entity.OpDeliver, entity.EventTransactionDelivered, func(txn *entity.Transaction) error {
		if err := invariant.RequireRole(txn, actingUserID, entity.PartyBuyer, entity.OpDeliver); err != nil {
			return err
		}
		return txn.MarkDelivered(s.timeProvider)
	})
}

// CancelTransaction abandons an unpaid transaction. Either party may cancel.
func (s *Service) CancelTransaction(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error) {
	return s.transition(ctx, transactionID, entity.OpCancel, entity.EventTransactionCancelled, func(txn *entity.Transaction) error {
		if _, err := invariant.RequireParty(txn, actingUserID, entity.OpCancel); err != nil {
			return err
		}
		return txn.Cancel(s.timeProvider)
	})
}

// GetTransaction returns the transaction to one of its parties or an admin
func (s *Service) GetTransaction(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error) {
	if err := s.validator.ValidateID(transactionID); err != nil {
		return nil, err
	}
	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := s.requireVisibility(ctx, txn, actingUserID, "getTransaction"); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListPayouts returns the payout records of a transaction's completion
func (s *Service) ListPayouts(ctx context.Context, transactionID, actingUserID string) ([]*entity.Payout, error) {
	txn, err := s.GetTransaction(ctx, transactionID, actingUserID)
	if err != nil {
		return nil, err
	}
	return s.uow.GetPayoutRepository(ctx).ListByOwner(ctx, txn.ID)
}

// transition runs one lifecycle change on a locked transaction
func (s *Service) transition(
	ctx context.Context,
	transactionID string,
	operation string,
	event entity.EventType,
	apply func(txn *entity.Transaction) error,
) (*entity.Transaction, error) {
	if err := s.validator.ValidateID(transactionID); err != nil {
		return nil, s.rejected(operation, transactionID, err)
	}

	var (
		updated *entity.Transaction
		from    entity.TransactionStatus
	)
	err := s.manager.Execute(ctx, transactionID, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			repo := s.uow.GetTransactionRepository(txCtx)
			txn, err := repo.GetForUpdate(txCtx, transactionID)
			if err != nil {
				return err
			}
			from = txn.Status
			if err := apply(txn); err != nil {
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
		return nil, s.rejected(operation, transactionID, err)
	}

	s.logger.Info("Transaction status changed", map[string]any{
		"transaction_id": transactionID,
		"operation":      operation,
		"from":           from,
		"to":             updated.Status,
	})
	s.metrics.TransitionApplied(operation, string(from), string(updated.Status))
	s.notify(ctx, entity.TransactionEvent(event, updated, updated.UpdatedAt))
	return updated, nil
}

func (s *Service) requireVisibility(ctx context.Context, txn *entity.Transaction, actingUserID, operation string) error {
	if actingUserID == entity.SystemActor {
		return nil
	}
	if _, ok := txn.PartyOf(actingUserID); ok {
		return nil
	}
	isAdmin, err := s.access.IsAdmin(ctx, actingUserID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return errs.NewAuthorizationError(actingUserID, operation, "buyer, seller or admin")
	}
	return nil
}

// rejected logs and counts a refused operation, returning err unchanged
func (s *Service) rejected(operation, transactionID string, err error) error {
	fields := map[string]any{
		"transaction_id": transactionID,
		"operation":      operation,
		"error":          err.Error(),
	}
	var logFielder interface{ LogFields() map[string]any }
	if errors.As(err, &logFielder) {
		for k, v := range logFielder.LogFields() {
			fields[k] = v
		}
	}

	code := errs.ErrorCode(err)
	if code >= errs.CodeInternalServer {
		s.logger.Error("Transaction operation failed", fields)
	} else {
		s.logger.Debug("Transaction operation rejected", fields)
	}
	s.metrics.TransitionRejected(operation, code)
	return err
}

func (s *Service) notify(ctx context.Context, event entity.Event) {
	s.notifier.Notify(context.WithoutCancel(ctx), event)
}
