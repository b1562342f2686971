package model

import (
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	"gorm.io/datatypes"
)

// Transaction represents the database model for escrow transactions
type Transaction struct {
	ID           string                                     `gorm:"primaryKey;size:64"`
	BuyerID      string                                     `gorm:"not null;size:64;index"`
	SellerID     string                                     `gorm:"not null;size:64;index"`
	ItemID       string                                     `gorm:"not null;size:64"`
	Amount       int64                                      `gorm:"not null;check:chk_transactions_amount,amount > 0"`
	Commission   int64                                      `gorm:"not null;check:chk_transactions_commission,commission >= 0"`
	SellerAmount int64                                      `gorm:"not null;check:chk_transactions_seller_amount,seller_amount >= 0"`
	Status       string                                     `gorm:"not null;size:20"`
	ReleaseState string                                     `gorm:"not null;size:20;default:none"`
	Delivery     datatypes.JSONType[entity.DeliveryDetails] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time                                  `gorm:"not null"`
	UpdatedAt    time.Time                                  `gorm:"not null"`
	PaidAt       *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	CompletedAt  *time.Time
	CancelledAt  *time.Time
	Version      int64 `gorm:"not null;default:1"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
