package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ItemCatalog reads listings from the items table the marketplace keeps in sync
type ItemCatalog struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ external.ItemCatalog = (*ItemCatalog)(nil)

// NewItemCatalog creates a catalog over db
func NewItemCatalog(db *gorm.DB, logger coreport.Logger) *ItemCatalog {
	return &ItemCatalog{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

func (c *ItemCatalog) GetItem(ctx context.Context, itemID string) (*entity.Item, error) {
	var m model.Item
	if err := c.db.WithContext(ctx).Where("id = ?", itemID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrItemNotFound
		}
		c.logger.Error("Failed to load item", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return nil, c.errorClassifier.wrap(err)
	}
	return &entity.Item{
		ID:         m.ID,
		SellerID:   m.SellerID,
		Price:      m.Price,
		BusinessID: m.BusinessID,
		Available:  m.Available,
	}, nil
}
