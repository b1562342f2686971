package model

import (
	"time"
)

// Payout represents one intended money movement out of escrow
type Payout struct {
	Reference     string    `gorm:"primaryKey;size:140"`
	OwnerID       string    `gorm:"not null;size:64;index"`
	TransactionID string    `gorm:"not null;size:64;index"`
	Role          string    `gorm:"not null;size:20"`
	RecipientID   string    `gorm:"size:64"`
	Amount        int64     `gorm:"not null;check:chk_payouts_amount,amount >= 0"`
	State         string    `gorm:"not null;size:20"`
	Attempts      int       `gorm:"not null;default:0"`
	LastError     string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
	ConfirmedAt   *time.Time
}

// TableName specifies the table name for Payout
func (Payout) TableName() string {
	return "payouts"
}
