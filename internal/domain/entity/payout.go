package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	tport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
)

// PayoutRole names who receives a payout
type PayoutRole string

const (
	PayoutToSeller   PayoutRole = "seller"
	PayoutToBuyer    PayoutRole = "buyer"
	PayoutToPlatform PayoutRole = "platform"
)

// PayoutState distinguishes a transfer never sent from one whose outcome is unknown
type PayoutState string

const (
	PayoutPending   PayoutState = "pending"
	PayoutAttempted PayoutState = "attempted"
	PayoutConfirmed PayoutState = "confirmed"
	PayoutFailed    PayoutState = "failed"
)

// Payout is one intended money movement out of escrow.
// Reference is stable across retries and doubles as the provider idempotency key.
type Payout struct {
	Reference     string
	OwnerID       string // transaction or dispute the payout settles
	TransactionID string
	Role          PayoutRole
	RecipientID   string
	Amount        int64
	State         PayoutState
	Attempts      int
	LastError     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ConfirmedAt   *time.Time
}

// PayoutReference builds the idempotency key for ownerID's payout to role
func PayoutReference(ownerID string, role PayoutRole) string {
	return ownerID + ":" + string(role)
}

// NewPayout creates a pending payout
func NewPayout(ownerID, transactionID string, role PayoutRole, recipientID string, amount int64, timeProvider tport.TimeProvider) (*Payout, error) {
	if ownerID == "" || transactionID == "" {
		return nil, errs.ErrInvalidID
	}
	if role != PayoutToPlatform && recipientID == "" {
		return nil, errs.ErrInvalidID
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	now := timeProvider.Now()
	return &Payout{
		Reference:     PayoutReference(ownerID, role),
		OwnerID:       ownerID,
		TransactionID: transactionID,
		Role:          role,
		RecipientID:   recipientID,
		Amount:        amount,
		State:         PayoutPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsInternal reports whether the payout stays inside the platform's books
func (p *Payout) IsInternal() bool {
	return p.Role == PayoutToPlatform
}

// IsConfirmed reports whether the money has moved
func (p *Payout) IsConfirmed() bool {
	return p.State == PayoutConfirmed
}

// MarkAttempted records that a transfer request is about to be sent
func (p *Payout) MarkAttempted(timeProvider tport.TimeProvider) {
	p.State = PayoutAttempted
	p.Attempts++
	p.UpdatedAt = timeProvider.Now()
}

// MarkConfirmed records a successful transfer
func (p *Payout) MarkConfirmed(timeProvider tport.TimeProvider) {
	now := timeProvider.Now()
	p.State = PayoutConfirmed
	p.LastError = ""
	p.ConfirmedAt = &now
	p.UpdatedAt = now
}

// MarkFailed records a definitive rejection. Nothing moved.
func (p *Payout) MarkFailed(reason string, timeProvider tport.TimeProvider) {
	p.State = PayoutFailed
	p.LastError = reason
	p.UpdatedAt = timeProvider.Now()
}

// MarkUnknown keeps the payout attempted after an ambiguous provider error
func (p *Payout) MarkUnknown(reason string, timeProvider tport.TimeProvider) {
	p.State = PayoutAttempted
	p.LastError = reason
	p.UpdatedAt = timeProvider.Now()
}

// Clone returns a copy safe to mutate independently
func (p *Payout) Clone() *Payout {
	c := *p
	c.ConfirmedAt = cloneTime(p.ConfirmedAt)
	return &c
}
