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

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func transactionToModel(t *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:           t.ID,
		BuyerID:      t.BuyerID,
		SellerID:     t.SellerID,
		ItemID:       t.ItemID,
		Amount:       t.Amount,
		Commission:   t.Commission,
		SellerAmount: t.SellerAmount,
		Status:       string(t.Status),
		ReleaseState: string(t.ReleaseState),
		Delivery:     datatypes.NewJSONType(t.Delivery),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		PaidAt:       t.PaidAt,
		ShippedAt:    t.ShippedAt,
		DeliveredAt:  t.DeliveredAt,
		CompletedAt:  t.CompletedAt,
		CancelledAt:  t.CancelledAt,
		Version:      t.Version,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		BuyerID:      m.BuyerID,
		SellerID:     m.SellerID,
		ItemID:       m.ItemID,
		Amount:       m.Amount,
		Commission:   m.Commission,
		SellerAmount: m.SellerAmount,
		Status:       entity.TransactionStatus(m.Status),
		ReleaseState: entity.ReleaseState(m.ReleaseState),
		Delivery:     m.Delivery.Data(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		PaidAt:       m.PaidAt,
		ShippedAt:    m.ShippedAt,
		DeliveredAt:  m.DeliveredAt,
		CompletedAt:  m.CompletedAt,
		CancelledAt:  m.CancelledAt,
		Version:      m.Version,
	}
}

// Create inserts a new transaction at version 1
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transaction.Version = 1
	m := transactionToModel(transaction)

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate transaction detected", map[string]any{
				"transaction_id": transaction.ID,
			})
			return errs.NewConflictError(transaction.ID, "transaction already exists")
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": transaction.ID,
			"error":          err.Error(),
		})
		return r.errorClassifier.wrap(err)
	}

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"buyer_id":       transaction.BuyerID,
	})
	return nil
}

// GetByID retrieves a transaction without locking it
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the row with SELECT ... FOR UPDATE
func (r *TransactionRepository) GetForUpdate(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *TransactionRepository) find(db *gorm.DB, id string) (*entity.Transaction, error) {
	var m model.Transaction
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return nil, r.errorClassifier.wrap(err)
	}
	return transactionToEntity(&m), nil
}

// Update writes every mutable column guarded by the version read earlier
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	m := transactionToModel(transaction)
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND version = ?", transaction.ID, transaction.Version).
		Updates(map[string]any{
			"status":        m.Status,
			"release_state": m.ReleaseState,
			"updated_at":    m.UpdatedAt,
			"paid_at":       m.PaidAt,
			"shipped_at":    m.ShippedAt,
			"delivered_at":  m.DeliveredAt,
			"completed_at":  m.CompletedAt,
			"cancelled_at":  m.CancelledAt,
			"version":       gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, transaction.ID); err != nil {
			return err
		}
		r.logger.Warn("Stale transaction version", map[string]any{
			"transaction_id": transaction.ID,
			"version":        transaction.Version,
		})
		return errs.NewConflictError(transaction.ID, "transaction was modified concurrently")
	}

	transaction.Version++
	return nil
}

// ListReadyForAutoRelease returns delivered transactions past the cutoff, oldest delivery first
func (r *TransactionRepository) ListReadyForAutoRelease(ctx context.Context, deliveredBefore time.Time, limit int) ([]*entity.Transaction, error) {
	return r.list(r.db.WithContext(ctx).
		Where("status = ? AND release_state = ? AND delivered_at <= ?",
			entity.StatusDelivered, entity.ReleaseNone, deliveredBefore).
		Order("delivered_at, id"), limit)
}

// ListByReleaseState returns transactions stuck in state since updatedBefore
func (r *TransactionRepository) ListByReleaseState(ctx context.Context, state entity.ReleaseState, updatedBefore time.Time, limit int) ([]*entity.Transaction, error) {
	return r.list(r.db.WithContext(ctx).
		Where("release_state = ? AND updated_at <= ?", state, updatedBefore).
		Order("updated_at, id"), limit)
}

func (r *TransactionRepository) list(db *gorm.DB, limit int) ([]*entity.Transaction, error) {
	if limit > 0 {
		db = db.Limit(limit)
	}
	var rows []model.Transaction
	if err := db.Find(&rows).Error; err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{"error": err.Error()})
		return nil, r.errorClassifier.wrap(err)
	}
	result := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		result = append(result, transactionToEntity(&rows[i]))
	}
	return result, nil
}
