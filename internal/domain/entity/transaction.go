package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	tport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
)

// TransactionStatus defines possible lifecycle values for an escrow transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "PENDING"
	StatusPaid      TransactionStatus = "PAID"
	StatusShipped   TransactionStatus = "SHIPPED"
	StatusDelivered TransactionStatus = "DELIVERED"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusDisputed  TransactionStatus = "DISPUTED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// IsValid reports whether s is a known status
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered,
		StatusCompleted, StatusDisputed, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further lifecycle change is possible
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ReleaseState tracks the money movement that accompanies settlement.
// It is bookkeeping next to the lifecycle status, not part of it.
type ReleaseState string

const (
	ReleaseNone       ReleaseState = "none"
	ReleaseInProgress ReleaseState = "releasing"
	ReleaseFailed     ReleaseState = "release_failed"
	ReleaseDone       ReleaseState = "released"
)

// DeliveryMethod is how the item changes hands
type DeliveryMethod string

const (
	DeliveryFaceToFace DeliveryMethod = "face_to_face"
	DeliveryBySeller   DeliveryMethod = "seller_delivery"
	DeliveryCourier    DeliveryMethod = "courier"
)

// IsValid reports whether m is a supported delivery method
func (m DeliveryMethod) IsValid() bool {
	return m == DeliveryFaceToFace || m == DeliveryBySeller || m == DeliveryCourier
}

// DeliveryDetails records how and where the hand-off happens
type DeliveryDetails struct {
	Method  DeliveryMethod `json:"method"`
	Address string         `json:"address,omitempty"`
	Notes   string         `json:"notes,omitempty"`
}

// Operation names used in transition errors and metrics
const (
	OpCreate        = "createTransaction"
	OpConfirmPay    = "confirmPayment"
	OpShip          = "markShipped"
	OpDeliver       = "markDelivered"
	OpComplete      = "completeTransaction"
	OpCancel        = "cancelTransaction"
	OpRetryRelease  = "retryRelease"
	OpOpenDispute   = "openDispute"
	OpSettleDispute = "settleDispute"
	OpLiftDispute   = "liftDispute"
)

// Transaction is an escrow-held purchase of one item by one buyer from one seller
type Transaction struct {
	ID           string
	BuyerID      string
	SellerID     string
	ItemID       string
	Amount       int64 // total in minor units
	Commission   int64
	SellerAmount int64
	Status       TransactionStatus
	ReleaseState ReleaseState
	Delivery     DeliveryDetails
	CreatedAt    time.Time
	UpdatedAt    time.Time
	PaidAt       *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	CompletedAt  *time.Time
	CancelledAt  *time.Time
	Version      int64 // optimistic concurrency counter, bumped on every write
}

// NewTransaction creates a PENDING transaction and derives the commission split
func NewTransaction(
	id, buyerID, sellerID, itemID string,
	amount int64,
	commissionBasisPoints int64,
	delivery DeliveryDetails,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if id == "" || buyerID == "" || sellerID == "" || itemID == "" {
		return nil, errs.ErrInvalidID
	}
	if !delivery.Method.IsValid() {
		return nil, errs.ErrInvalidRequest
	}

	commission, sellerAmount, err := SplitCommission(amount, commissionBasisPoints)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Transaction{
		ID:           id,
		BuyerID:      buyerID,
		SellerID:     sellerID,
		ItemID:       itemID,
		Amount:       amount,
		Commission:   commission,
		SellerAmount: sellerAmount,
		Status:       StatusPending,
		ReleaseState: ReleaseNone,
		Delivery:     delivery,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (t *Transaction) reject(operation string) error {
	return errs.NewTransitionError(t.ID, operation, string(t.Status))
}

func (t *Transaction) touch(now time.Time) *time.Time {
	t.UpdatedAt = now
	return &now
}

// MarkPaid moves PENDING to PAID once the buyer's payment is held
func (t *Transaction) MarkPaid(timeProvider tport.TimeProvider) error {
	if t.Status != StatusPending {
		return t.reject(OpConfirmPay)
	}
	t.Status = StatusPaid
	t.PaidAt = t.touch(timeProvider.Now())
	return nil
}

// MarkShipped moves PAID to SHIPPED
func (t *Transaction) MarkShipped(timeProvider tport.TimeProvider) error {
	if t.Status != StatusPaid {
		return t.reject(OpShip)
	}
	t.Status = StatusShipped
	t.ShippedAt = t.touch(timeProvider.Now())
	return nil
}

// MarkDelivered moves SHIPPED to DELIVERED
func (t *Transaction) MarkDelivered(timeProvider tport.TimeProvider) error {
	if t.Status != StatusShipped {
		return t.reject(OpDeliver)
	}
	t.Status = StatusDelivered
	t.DeliveredAt = t.touch(timeProvider.Now())
	return nil
}

// Cancel moves PENDING to CANCELLED. Nothing has been paid yet, so no money moves.
func (t *Transaction) Cancel(timeProvider tport.TimeProvider) error {
	if t.Status != StatusPending {
		return t.reject(OpCancel)
	}
	t.Status = StatusCancelled
	t.CancelledAt = t.touch(timeProvider.Now())
	return nil
}

// BeginRelease claims a DELIVERED transaction for seller payout.
// A release already in flight is a conflict rather than a bad transition.
func (t *Transaction) BeginRelease(timeProvider tport.TimeProvider) error {
	if t.Status != StatusDelivered {
		return t.reject(OpComplete)
	}
	switch t.ReleaseState {
	case ReleaseNone, ReleaseFailed:
	case ReleaseInProgress:
		return errs.NewConflictError(t.ID, "release already in progress")
	default:
		return t.reject(OpComplete)
	}
	t.ReleaseState = ReleaseInProgress
	t.touch(timeProvider.Now())
	return nil
}

// FinishRelease records a confirmed payout. A DELIVERED transaction becomes
// COMPLETED; a transaction already settled by a dispute keeps its status.
func (t *Transaction) FinishRelease(timeProvider tport.TimeProvider) error {
	if t.ReleaseState != ReleaseInProgress {
		return t.reject(OpComplete)
	}
	now := timeProvider.Now()
	t.ReleaseState = ReleaseDone
	if t.Status == StatusDelivered {
		t.Status = StatusCompleted
		t.CompletedAt = t.touch(now)
		return nil
	}
	t.touch(now)
	return nil
}

// FailRelease records that at least one payout did not go through
func (t *Transaction) FailRelease(timeProvider tport.TimeProvider) error {
	if t.ReleaseState != ReleaseInProgress {
		return t.reject(OpComplete)
	}
	t.ReleaseState = ReleaseFailed
	t.touch(timeProvider.Now())
	return nil
}

// ResumeRelease claims a failed release for another attempt
func (t *Transaction) ResumeRelease(timeProvider tport.TimeProvider) error {
	switch t.ReleaseState {
	case ReleaseFailed:
	case ReleaseInProgress:
		return errs.NewConflictError(t.ID, "release already in progress")
	default:
		return t.reject(OpRetryRelease)
	}
	t.ReleaseState = ReleaseInProgress
	t.touch(timeProvider.Now())
	return nil
}

// MarkDisputed freezes the transaction while a dispute is open
func (t *Transaction) MarkDisputed(timeProvider tport.TimeProvider) error {
	switch t.Status {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered:
	case StatusDisputed:
		return errs.NewConflictError(t.ID, "transaction is already disputed")
	default:
		return t.reject(OpOpenDispute)
	}
	if t.ReleaseState == ReleaseInProgress || t.ReleaseState == ReleaseFailed {
		return errs.NewConflictError(t.ID, "funds release already started")
	}
	t.Status = StatusDisputed
	t.touch(timeProvider.Now())
	return nil
}

// LiftDispute returns a DISPUTED transaction to the status it held before
// the dispute opened. Used when a dispute is closed without a split.
func (t *Transaction) LiftDispute(previous TransactionStatus, timeProvider tport.TimeProvider) error {
	if t.Status != StatusDisputed {
		return t.reject(OpLiftDispute)
	}
	switch previous {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered:
	default:
		return errs.ErrInvalidRequest
	}
	t.Status = previous
	t.touch(timeProvider.Now())
	return nil
}

// SettleDispute applies an admin's resolution to a DISPUTED transaction and
// starts the release of whatever split was decided.
func (t *Transaction) SettleDispute(outcome DisputeOutcome, timeProvider tport.TimeProvider) error {
	if t.Status != StatusDisputed {
		return t.reject(OpSettleDispute)
	}
	now := timeProvider.Now()
	switch outcome {
	case OutcomeComplete:
		t.Status = StatusCompleted
		t.CompletedAt = t.touch(now)
	case OutcomeCancel:
		t.Status = StatusCancelled
		t.CancelledAt = t.touch(now)
	default:
		return errs.ErrInvalidRequest
	}
	t.ReleaseState = ReleaseInProgress
	return nil
}

// IsTerminal reports whether the lifecycle is finished
func (t *Transaction) IsTerminal() bool {
	return t.Status.IsTerminal()
}

// Clone returns a deep copy safe to mutate independently
func (t *Transaction) Clone() *Transaction {
	c := *t
	c.PaidAt = cloneTime(t.PaidAt)
	c.ShippedAt = cloneTime(t.ShippedAt)
	c.DeliveredAt = cloneTime(t.DeliveredAt)
	c.CompletedAt = cloneTime(t.CompletedAt)
	c.CancelledAt = cloneTime(t.CancelledAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
