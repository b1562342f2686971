package model

import (
	"time"
)

// ReleaseLease marks a settlement as being driven by one holder until ExpiresAt
type ReleaseLease struct {
	LeaseKey   string    `gorm:"primaryKey;size:140"`
	Holder     string    `gorm:"not null;size:64"`
	AcquiredAt time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for ReleaseLease
func (ReleaseLease) TableName() string {
	return "release_leases"
}
