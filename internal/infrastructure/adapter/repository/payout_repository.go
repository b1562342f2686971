package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PayoutRepository implements persistence.PayoutRepository using GORM
type PayoutRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.PayoutRepository = (*PayoutRepository)(nil)

// NewPayoutRepository creates a new PayoutRepository instance
func NewPayoutRepository(db *gorm.DB, logger coreport.Logger) *PayoutRepository {
	return &PayoutRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func payoutToModel(p *entity.Payout) model.Payout {
	return model.Payout{
		Reference:     p.Reference,
		OwnerID:       p.OwnerID,
		TransactionID: p.TransactionID,
		Role:          string(p.Role),
		RecipientID:   p.RecipientID,
		Amount:        p.Amount,
		State:         string(p.State),
		Attempts:      p.Attempts,
		LastError:     p.LastError,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		ConfirmedAt:   p.ConfirmedAt,
	}
}

func payoutToEntity(m *model.Payout) *entity.Payout {
	return &entity.Payout{
		Reference:     m.Reference,
		OwnerID:       m.OwnerID,
		TransactionID: m.TransactionID,
		Role:          entity.PayoutRole(m.Role),
		RecipientID:   m.RecipientID,
		Amount:        m.Amount,
		State:         entity.PayoutState(m.State),
		Attempts:      m.Attempts,
		LastError:     m.LastError,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		ConfirmedAt:   m.ConfirmedAt,
	}
}

// CreateIfAbsent inserts with ON CONFLICT (reference) DO NOTHING
func (r *PayoutRepository) CreateIfAbsent(ctx context.Context, payout *entity.Payout) (bool, error) {
	m := payoutToModel(payout)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "reference"}}, DoNothing: true}).
		Create(&m)
	if result.Error != nil {
		r.logger.Error("Failed to record payout", map[string]any{
			"reference": payout.Reference,
			"error":     result.Error.Error(),
		})
		return false, r.errorClassifier.wrap(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *PayoutRepository) GetByReference(ctx context.Context, reference string) (*entity.Payout, error) {
	var m model.Payout
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPayoutNotFound
		}
		return nil, r.errorClassifier.wrap(err)
	}
	return payoutToEntity(&m), nil
}

func (r *PayoutRepository) Update(ctx context.Context, payout *entity.Payout) error {
	result := r.db.WithContext(ctx).Model(&model.Payout{}).
		Where("reference = ?", payout.Reference).
		Updates(map[string]any{
			"state":        string(payout.State),
			"attempts":     payout.Attempts,
			"last_error":   payout.LastError,
			"updated_at":   payout.UpdatedAt,
			"confirmed_at": payout.ConfirmedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update payout", map[string]any{
			"reference": payout.Reference,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPayoutNotFound
	}
	return nil
}

func (r *PayoutRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Payout, error) {
	var rows []model.Payout
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("reference").Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.wrap(err)
	}
	result := make([]*entity.Payout, 0, len(rows))
	for i := range rows {
		result = append(result, payoutToEntity(&rows[i]))
	}
	return result, nil
}
