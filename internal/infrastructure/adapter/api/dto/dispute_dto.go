package dto

import (
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// OpenDisputeRequest represents a party's complaint
type OpenDisputeRequest struct {
	Reason      string `json:"reason" binding:"required,oneof=item_not_received item_not_as_described item_damaged payment_issue seller_unresponsive delivery_issue other"`
	Description string `json:"description" binding:"max=4000"`
}

// EvidenceRequest is one party's evidence bundle
type EvidenceRequest struct {
	Description     string   `json:"description" binding:"max=4000"`
	Photos          []string `json:"photos" binding:"max=10,dive,required,max=2048"`
	AdditionalNotes string   `json:"additionalNotes" binding:"max=4000"`
}

// ToBundle converts the request into the domain value
func (r EvidenceRequest) ToBundle() entity.EvidenceBundle {
	return entity.EvidenceBundle{
		Description:     r.Description,
		Photos:          r.Photos,
		AdditionalNotes: r.AdditionalNotes,
	}
}

// AdminNotesRequest replaces the admin's working notes
type AdminNotesRequest struct {
	Notes string `json:"notes" binding:"max=8000"`
}

// ResolveDisputeRequest is the admin's split of the escrowed amount
type ResolveDisputeRequest struct {
	Outcome      string `json:"outcome" binding:"omitempty,oneof=complete cancel"`
	Resolution   string `json:"resolution" binding:"required,max=4000"`
	RefundAmount *int64 `json:"refundAmount" binding:"required,gte=0"`
	SellerAmount *int64 `json:"sellerAmount" binding:"required,gte=0"`
}

// CloseDisputeRequest withdraws a dispute without moving money
type CloseDisputeRequest struct {
	Note string `json:"note" binding:"max=4000"`
}

// DisputeResponse represents a dispute in API responses
type DisputeResponse struct {
	ID              string                 `json:"id"`
	TransactionID   string                 `json:"transactionId"`
	OpenedBy        string                 `json:"openedBy"`
	OpenedByParty   string                 `json:"openedByParty"`
	Reason          string                 `json:"reason"`
	Description     string                 `json:"description,omitempty"`
	PreviousStatus  string                 `json:"previousStatus"`
	BuyerEvidence   *entity.EvidenceBundle `json:"buyerEvidence,omitempty"`
	SellerEvidence  *entity.EvidenceBundle `json:"sellerEvidence,omitempty"`
	Status          string                 `json:"status"`
	AdminNotes      string                 `json:"adminNotes,omitempty"`
	Resolution      string                 `json:"resolution,omitempty"`
	ClosingNote     string                 `json:"closingNote,omitempty"`
	Outcome         string                 `json:"outcome,omitempty"`
	RefundAmount    *int64                 `json:"refundAmount,omitempty"`
	SellerAmount    *int64                 `json:"sellerAmount,omitempty"`
	ResolvedBy      string                 `json:"resolvedBy,omitempty"`
	PayoutState     string                 `json:"payoutState"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	ReviewStartedAt *time.Time             `json:"reviewStartedAt,omitempty"`
	ResolvedAt      *time.Time             `json:"resolvedAt,omitempty"`
	ClosedAt        *time.Time             `json:"closedAt,omitempty"`
}

// NewDisputeResponse maps a domain dispute to its API form
func NewDisputeResponse(d *entity.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:              d.ID,
		TransactionID:   d.TransactionID,
		OpenedBy:        d.OpenedBy,
		OpenedByParty:   string(d.OpenedByParty),
		Reason:          string(d.Reason),
		Description:     d.Description,
		PreviousStatus:  string(d.PreviousStatus),
		BuyerEvidence:   d.BuyerEvidence,
		SellerEvidence:  d.SellerEvidence,
		Status:          string(d.Status),
		AdminNotes:      d.AdminNotes,
		Resolution:      d.Resolution,
		ClosingNote:     d.ClosingNote,
		Outcome:         string(d.Outcome),
		RefundAmount:    d.RefundAmount,
		SellerAmount:    d.SellerAmount,
		ResolvedBy:      d.ResolvedBy,
		PayoutState:     string(d.Settlement),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		ReviewStartedAt: d.ReviewStartedAt,
		ResolvedAt:      d.ResolvedAt,
		ClosedAt:        d.ClosedAt,
	}
}
