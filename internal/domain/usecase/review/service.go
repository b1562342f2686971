package review

import (
	"context"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
)

// Reasons reported when a review is not allowed
const (
	ReasonNotBuyer     = "only the buyer can review a purchase"
	ReasonNotCompleted = "transaction is not completed"
	ReasonNoBusiness   = "item is not linked to a business"
)

// Service gates business reviews on completed purchases
type Service struct {
	uow     persistence.UnitOfWork
	catalog external.ItemCatalog
	logger  coreport.Logger
}

var _ usecase.ReviewUseCase = (*Service)(nil)

// NewReviewService creates a new review eligibility service
func NewReviewService(uow persistence.UnitOfWork, catalog external.ItemCatalog, logger coreport.Logger) *Service {
	return &Service{uow: uow, catalog: catalog, logger: logger.Named("review")}
}

func (s *Service) CanReview(ctx context.Context, transactionID, callerID string) (bool, error) {
	eligibility, txn, err := s.evaluate(ctx, transactionID)
	if err != nil {
		return false, err
	}
	return eligibility.Eligible && callerID != "" && callerID == txn.BuyerID, nil
}

func (s *Service) CheckEligibility(ctx context.Context, transactionID, userID string) (*usecase.ReviewEligibility, error) {
	eligibility, txn, err := s.evaluate(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if userID != txn.BuyerID {
		if _, ok := txn.PartyOf(userID); !ok {
			return nil, errs.NewAuthorizationError(userID, "checkReviewEligibility", "buyer")
		}
		return &usecase.ReviewEligibility{Eligible: false, Reason: ReasonNotBuyer}, nil
	}
	return eligibility, nil
}

func (s *Service) evaluate(ctx context.Context, transactionID string) (*usecase.ReviewEligibility, *entity.Transaction, error) {
	if transactionID == "" {
		return nil, nil, errs.ErrInvalidID
	}
	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, nil, err
	}
	if txn.Status != entity.StatusCompleted {
		return &usecase.ReviewEligibility{Reason: ReasonNotCompleted}, txn, nil
	}

	item, err := s.catalog.GetItem(ctx, txn.ItemID)
	if err != nil {
		s.logger.Warn("Catalog lookup failed during review check", map[string]any{
			"transaction_id": transactionID,
			"item_id":        txn.ItemID,
			"error":          err.Error(),
		})
		return nil, nil, err
	}
	if !item.HasBusiness() {
		return &usecase.ReviewEligibility{Reason: ReasonNoBusiness}, txn, nil
	}
	return &usecase.ReviewEligibility{Eligible: true, BusinessID: *item.BusinessID}, txn, nil
}
