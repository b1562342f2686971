package model

import (
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	"gorm.io/datatypes"
)

// Dispute represents the database model for disputes. Evidence columns hold
// JSON null until the party submits a bundle.
type Dispute struct {
	ID              string                                     `gorm:"primaryKey;size:64"`
	TransactionID   string                                     `gorm:"not null;size:64;index"`
	OpenedBy        string                                     `gorm:"not null;size:64"`
	OpenedByParty   string                                     `gorm:"not null;size:10"`
	Reason          string                                     `gorm:"not null;size:40"`
	Description     string                                     `gorm:"type:text"`
	PreviousStatus  string                                     `gorm:"not null;size:20"`
	BuyerEvidence   datatypes.JSONType[*entity.EvidenceBundle] `gorm:"type:jsonb"`
	SellerEvidence  datatypes.JSONType[*entity.EvidenceBundle] `gorm:"type:jsonb"`
	Status          string                                     `gorm:"not null;size:20"`
	AdminNotes      string                                     `gorm:"type:text"`
	Resolution      string                                     `gorm:"type:text"`
	ClosingNote     string                                     `gorm:"type:text"`
	Outcome         string                                     `gorm:"size:20"`
	RefundAmount    *int64
	SellerAmount    *int64
	ResolvedBy      string    `gorm:"size:64"`
	Settlement      string    `gorm:"not null;size:20;default:none"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
	ReviewStartedAt *time.Time
	ResolvedAt      *time.Time
	ClosedAt        *time.Time
	Version         int64 `gorm:"not null;default:1"`

	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for Dispute
func (Dispute) TableName() string {
	return "disputes"
}
