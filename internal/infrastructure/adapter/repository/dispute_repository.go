package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var activeDisputeStatuses = []string{string(entity.DisputeOpen), string(entity.DisputeUnderReview)}

// DisputeRepository implements persistence.DisputeRepository using GORM
type DisputeRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.DisputeRepository = (*DisputeRepository)(nil)

// NewDisputeRepository creates a new DisputeRepository instance
func NewDisputeRepository(db *gorm.DB, logger coreport.Logger) *DisputeRepository {
	return &DisputeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func disputeToModel(d *entity.Dispute) model.Dispute {
	return model.Dispute{
		ID:              d.ID,
		TransactionID:   d.TransactionID,
		OpenedBy:        d.OpenedBy,
		OpenedByParty:   string(d.OpenedByParty),
		Reason:          string(d.Reason),
		Description:     d.Description,
		PreviousStatus:  string(d.PreviousStatus),
		BuyerEvidence:   datatypes.NewJSONType(d.BuyerEvidence),
		SellerEvidence:  datatypes.NewJSONType(d.SellerEvidence),
		Status:          string(d.Status),
		AdminNotes:      d.AdminNotes,
		Resolution:      d.Resolution,
		ClosingNote:     d.ClosingNote,
		Outcome:         string(d.Outcome),
		RefundAmount:    d.RefundAmount,
		SellerAmount:    d.SellerAmount,
		ResolvedBy:      d.ResolvedBy,
		Settlement:      string(d.Settlement),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		ReviewStartedAt: d.ReviewStartedAt,
		ResolvedAt:      d.ResolvedAt,
		ClosedAt:        d.ClosedAt,
		Version:         d.Version,
	}
}

func disputeToEntity(m *model.Dispute) *entity.Dispute {
	return &entity.Dispute{
		ID:              m.ID,
		TransactionID:   m.TransactionID,
		OpenedBy:        m.OpenedBy,
		OpenedByParty:   entity.Party(m.OpenedByParty),
		Reason:          entity.DisputeReason(m.Reason),
		Description:     m.Description,
		PreviousStatus:  entity.TransactionStatus(m.PreviousStatus),
		BuyerEvidence:   m.BuyerEvidence.Data(),
		SellerEvidence:  m.SellerEvidence.Data(),
		Status:          entity.DisputeStatus(m.Status),
		AdminNotes:      m.AdminNotes,
		Resolution:      m.Resolution,
		ClosingNote:     m.ClosingNote,
		Outcome:         entity.DisputeOutcome(m.Outcome),
		RefundAmount:    m.RefundAmount,
		SellerAmount:    m.SellerAmount,
		ResolvedBy:      m.ResolvedBy,
		Settlement:      entity.SettlementState(m.Settlement),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		ReviewStartedAt: m.ReviewStartedAt,
		ResolvedAt:      m.ResolvedAt,
		ClosedAt:        m.ClosedAt,
		Version:         m.Version,
	}
}

// Create inserts a dispute; the partial unique index rejects a second active one
func (r *DisputeRepository) Create(ctx context.Context, dispute *entity.Dispute) error {
	dispute.Version = 1
	m := disputeToModel(dispute)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if r.errorClassifier.IsActiveDisputeViolation(err) {
			r.logger.Warn("Active dispute already exists", map[string]any{
				"transaction_id": dispute.TransactionID,
			})
			return errs.NewConflictError(dispute.TransactionID, "an active dispute already exists")
		}
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return errs.NewConflictError(dispute.ID, "dispute already exists")
		}
		r.logger.Error("Failed to create dispute", map[string]any{
			"dispute_id":     dispute.ID,
			"transaction_id": dispute.TransactionID,
			"error":          err.Error(),
		})
		return r.errorClassifier.wrap(err)
	}
	return nil
}

// GetByID retrieves a dispute without locking it
func (r *DisputeRepository) GetByID(ctx context.Context, id string) (*entity.Dispute, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// GetForUpdate reads the dispute row with SELECT ... FOR UPDATE
func (r *DisputeRepository) GetForUpdate(ctx context.Context, id string) (*entity.Dispute, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
}

func (r *DisputeRepository) GetActiveByTransactionID(ctx context.Context, transactionID string) (*entity.Dispute, error) {
	return r.first(r.db.WithContext(ctx).
		Where("transaction_id = ? AND status IN ?", transactionID, activeDisputeStatuses))
}

func (r *DisputeRepository) GetLatestByTransactionID(ctx context.Context, transactionID string) (*entity.Dispute, error) {
	return r.first(r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at DESC, id DESC"))
}

func (r *DisputeRepository) first(db *gorm.DB) (*entity.Dispute, error) {
	var m model.Dispute
	if err := db.Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDisputeNotFound
		}
		r.logger.Error("Failed to get dispute", map[string]any{"error": err.Error()})
		return nil, r.errorClassifier.wrap(err)
	}
	return disputeToEntity(&m), nil
}

// Update writes the mutable dispute columns guarded by its version
func (r *DisputeRepository) Update(ctx context.Context, dispute *entity.Dispute) error {
	m := disputeToModel(dispute)
	result := r.db.WithContext(ctx).Model(&model.Dispute{}).
		Where("id = ? AND version = ?", dispute.ID, dispute.Version).
		Updates(map[string]any{
			"buyer_evidence":    m.BuyerEvidence,
			"seller_evidence":   m.SellerEvidence,
			"status":            m.Status,
			"admin_notes":       m.AdminNotes,
			"resolution":        m.Resolution,
			"closing_note":      m.ClosingNote,
			"outcome":           m.Outcome,
			"refund_amount":     m.RefundAmount,
			"seller_amount":     m.SellerAmount,
			"resolved_by":       m.ResolvedBy,
			"settlement":        m.Settlement,
			"updated_at":        m.UpdatedAt,
			"review_started_at": m.ReviewStartedAt,
			"resolved_at":       m.ResolvedAt,
			"closed_at":         m.ClosedAt,
			"version":           gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		r.logger.Error("Failed to update dispute", map[string]any{
			"dispute_id": dispute.ID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, dispute.ID); err != nil {
			return err
		}
		return errs.NewConflictError(dispute.ID, "dispute was modified concurrently")
	}

	dispute.Version++
	return nil
}

// ListUnsettled returns resolved disputes with payouts still outstanding
func (r *DisputeRepository) ListUnsettled(ctx context.Context, updatedBefore time.Time, limit int) ([]*entity.Dispute, error) {
	db := r.db.WithContext(ctx).
		Where("status = ? AND settlement IN ? AND updated_at <= ?",
			entity.DisputeResolved,
			[]string{string(entity.SettlementPending), string(entity.SettlementPartial)},
			updatedBefore).
		Order("updated_at, id")
	if limit > 0 {
		db = db.Limit(limit)
	}

	var rows []model.Dispute
	if err := db.Find(&rows).Error; err != nil {
		r.logger.Error("Failed to list unsettled disputes", map[string]any{"error": err.Error()})
		return nil, r.errorClassifier.wrap(err)
	}
	result := make([]*entity.Dispute, 0, len(rows))
	for i := range rows {
		result = append(result, disputeToEntity(&rows[i]))
	}
	return result, nil
}
