package dto

import (
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// DeliveryRequest describes how the item changes hands
type DeliveryRequest struct {
	Method  string `json:"method" binding:"required,oneof=face_to_face seller_delivery courier"`
	Address string `json:"address" binding:"max=500"`
	Notes   string `json:"notes" binding:"max=1000"`
}

// CreateTransactionRequest represents the API request for a checkout.
// Amount may be omitted, in which case the listing price is charged.
type CreateTransactionRequest struct {
	ItemID   string          `json:"itemId" binding:"required"`
	Amount   int64           `json:"amount" binding:"omitempty,gt=0"`
	Delivery DeliveryRequest `json:"delivery" binding:"required"`
}

// ToDelivery converts the request into the domain value
func (r DeliveryRequest) ToDelivery() entity.DeliveryDetails {
	return entity.DeliveryDetails{
		Method:  entity.DeliveryMethod(r.Method),
		Address: r.Address,
		Notes:   r.Notes,
	}
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID           string                 `json:"id"`
	BuyerID      string                 `json:"buyerId"`
	SellerID     string                 `json:"sellerId"`
	ItemID       string                 `json:"itemId"`
	Amount       int64                  `json:"amount"`
	Commission   int64                  `json:"commission"`
	SellerAmount int64                  `json:"sellerAmount"`
	Status       string                 `json:"status"`
	ReleaseState string                 `json:"releaseState"`
	Delivery     entity.DeliveryDetails `json:"delivery"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
	PaidAt       *time.Time             `json:"paidAt,omitempty"`
	ShippedAt    *time.Time             `json:"shippedAt,omitempty"`
	DeliveredAt  *time.Time             `json:"deliveredAt,omitempty"`
	CompletedAt  *time.Time             `json:"completedAt,omitempty"`
	CancelledAt  *time.Time             `json:"cancelledAt,omitempty"`
}

// NewTransactionResponse maps a domain transaction to its API form
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		BuyerID:      t.BuyerID,
		SellerID:     t.SellerID,
		ItemID:       t.ItemID,
		Amount:       t.Amount,
		Commission:   t.Commission,
		SellerAmount: t.SellerAmount,
		Status:       string(t.Status),
		ReleaseState: string(t.ReleaseState),
		Delivery:     t.Delivery,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		PaidAt:       t.PaidAt,
		ShippedAt:    t.ShippedAt,
		DeliveredAt:  t.DeliveredAt,
		CompletedAt:  t.CompletedAt,
		CancelledAt:  t.CancelledAt,
	}
}

// PayoutResponse represents one payout record
type PayoutResponse struct {
	Reference   string     `json:"reference"`
	Role        string     `json:"role"`
	RecipientID string     `json:"recipientId"`
	Amount      int64      `json:"amount"`
	State       string     `json:"state"`
	Attempts    int        `json:"attempts"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
}

// NewPayoutResponses maps payout records to their API form
func NewPayoutResponses(payouts []*entity.Payout) []PayoutResponse {
	result := make([]PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		result = append(result, PayoutResponse{
			Reference:   p.Reference,
			Role:        string(p.Role),
			RecipientID: p.RecipientID,
			Amount:      p.Amount,
			State:       string(p.State),
			Attempts:    p.Attempts,
			UpdatedAt:   p.UpdatedAt,
			ConfirmedAt: p.ConfirmedAt,
		})
	}
	return result
}

// ReviewEligibilityResponse answers the review gate
type ReviewEligibilityResponse struct {
	TransactionID string `json:"transactionId"`
	Eligible      bool   `json:"eligible"`
	BusinessID    string `json:"businessId,omitempty"`
	Reason        string `json:"reason,omitempty"`
}
