package migration

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var businessBakery = "business-bakery"

// defaultItems are development listings so a fresh database can run a full checkout
var defaultItems = []model.Item{
	{ID: "item-bike", SellerID: "user-seller", Price: 12000, Available: true},
	{ID: "item-sofa", SellerID: "user-seller", Price: 45000, Available: true},
	{ID: "item-cake", SellerID: "user-baker", Price: 3500, BusinessID: &businessBakery, Available: true},
}

// CreateDefaultItems inserts the development listings that are missing
func CreateDefaultItems(ctx context.Context, db *gorm.DB, now time.Time) error {
	for _, item := range defaultItems {
		item.CreatedAt = now
		item.UpdatedAt = now
		if err := db.WithContext(ctx).Where(model.Item{ID: item.ID}).FirstOrCreate(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
