package model

import (
	"time"
)

// Item is the escrow service's read model of a marketplace listing
type Item struct {
	ID         string    `gorm:"primaryKey;size:64"`
	SellerID   string    `gorm:"not null;size:64;index"`
	Price      int64     `gorm:"not null"`
	BusinessID *string   `gorm:"size:64"`
	Available  bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}
