package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	tport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
)

// DisputeReason is the category a party picks when opening a dispute
type DisputeReason string

const (
	ReasonItemNotReceived    DisputeReason = "item_not_received"
	ReasonItemNotAsDescribed DisputeReason = "item_not_as_described"
	ReasonItemDamaged        DisputeReason = "item_damaged"
	ReasonPaymentIssue       DisputeReason = "payment_issue"
	ReasonSellerUnresponsive DisputeReason = "seller_unresponsive"
	ReasonDeliveryIssue      DisputeReason = "delivery_issue"
	ReasonOther              DisputeReason = "other"
)

// DisputeReasons lists every reason a dispute may be opened with
func DisputeReasons() []DisputeReason {
	return []DisputeReason{
		ReasonItemNotReceived, ReasonItemNotAsDescribed, ReasonItemDamaged,
		ReasonPaymentIssue, ReasonSellerUnresponsive, ReasonDeliveryIssue, ReasonOther,
	}
}

// IsValid reports whether r is a known reason
func (r DisputeReason) IsValid() bool {
	for _, known := range DisputeReasons() {
		if r == known {
			return true
		}
	}
	return false
}

// DisputeStatus tracks the review of a dispute
type DisputeStatus string

const (
	DisputeOpen        DisputeStatus = "open"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
	DisputeClosed      DisputeStatus = "closed"
)

// IsActive reports whether the dispute still blocks the transaction
func (s DisputeStatus) IsActive() bool {
	return s == DisputeOpen || s == DisputeUnderReview
}

// DisputeOutcome is the lifecycle status an admin settles the transaction into
type DisputeOutcome string

const (
	OutcomeComplete DisputeOutcome = "complete"
	OutcomeCancel   DisputeOutcome = "cancel"
)

// IsValid reports whether o is a known outcome
func (o DisputeOutcome) IsValid() bool {
	return o == OutcomeComplete || o == OutcomeCancel
}

// SettlementState tracks the payouts a resolution decided on
type SettlementState string

const (
	SettlementNone    SettlementState = "none"
	SettlementPending SettlementState = "pending"
	SettlementPartial SettlementState = "partial"
	SettlementDone    SettlementState = "settled"
)

// Limits on evidence a party can attach
const (
	MaxEvidencePhotos       = 10
	MaxEvidenceTextLength   = 4000
	MaxAdminNotesLength     = 8000
	MaxResolutionTextLength = 4000
)

// EvidenceBundle is what one party submits to support their side
type EvidenceBundle struct {
	Description     string    `json:"description"`
	Photos          []string  `json:"photos,omitempty"`
	AdditionalNotes string    `json:"additionalNotes,omitempty"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

// Validate checks the bundle against the size limits. Every field is
// optional, so an empty bundle is accepted.
func (b EvidenceBundle) Validate() error {
	if len(b.Description) > MaxEvidenceTextLength || len(b.AdditionalNotes) > MaxEvidenceTextLength {
		return errs.ErrInvalidRequest
	}
	if len(b.Photos) > MaxEvidencePhotos {
		return errs.ErrInvalidRequest
	}
	for _, p := range b.Photos {
		if strings.TrimSpace(p) == "" {
			return errs.ErrInvalidRequest
		}
	}
	return nil
}

// Operation names recorded on dispute transition errors
const (
	OpSubmitEvidence = "submitEvidence"
	OpBeginReview    = "beginReview"
	OpResolve        = "resolveDispute"
	OpClose          = "closeDispute"
	OpRetryPayouts   = "retryDisputePayouts"
)

// Dispute is a formal disagreement on one transaction, resolved by an admin
type Dispute struct {
	ID              string
	TransactionID   string
	OpenedBy        string
	OpenedByParty   Party
	Reason          DisputeReason
	Description     string
	PreviousStatus  TransactionStatus // transaction status at the moment the dispute opened
	BuyerEvidence   *EvidenceBundle
	SellerEvidence  *EvidenceBundle
	Status          DisputeStatus
	AdminNotes      string
	Resolution      string // set only at resolution
	ClosingNote     string // why an admin closed the dispute instead
	Outcome         DisputeOutcome
	RefundAmount    *int64 // set only at resolution
	SellerAmount    *int64 // set only at resolution
	ResolvedBy      string
	Settlement      SettlementState
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ReviewStartedAt *time.Time
	ResolvedAt      *time.Time
	ClosedAt        *time.Time
	Version         int64
}

// NewDispute opens a dispute on txn on behalf of party
func NewDispute(
	id string,
	txn *Transaction,
	openedBy string,
	party Party,
	reason DisputeReason,
	description string,
	timeProvider tport.TimeProvider,
) (*Dispute, error) {
	if id == "" {
		return nil, errs.ErrInvalidID
	}
	if !reason.IsValid() {
		return nil, errs.ErrInvalidReason
	}
	if len(description) > MaxEvidenceTextLength {
		return nil, errs.ErrInvalidRequest
	}
	now := timeProvider.Now()
	return &Dispute{
		ID:             id,
		TransactionID:  txn.ID,
		OpenedBy:       openedBy,
		OpenedByParty:  party,
		Reason:         reason,
		Description:    description,
		PreviousStatus: txn.Status,
		Status:         DisputeOpen,
		Settlement:     SettlementNone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (d *Dispute) reject(operation string) error {
	return errs.NewTransitionError(d.ID, operation, string(d.Status))
}

// SubmitEvidence stores party's bundle, replacing any earlier submission
func (d *Dispute) SubmitEvidence(party Party, bundle EvidenceBundle, timeProvider tport.TimeProvider) error {
	if !d.Status.IsActive() {
		return d.reject(OpSubmitEvidence)
	}
	if err := bundle.Validate(); err != nil {
		return err
	}
	now := timeProvider.Now()
	bundle.SubmittedAt = now
	bundle.Photos = append([]string(nil), bundle.Photos...)
	switch party {
	case PartyBuyer:
		d.BuyerEvidence = &bundle
	case PartySeller:
		d.SellerEvidence = &bundle
	default:
		return errs.ErrInvalidRequest
	}
	d.UpdatedAt = now
	return nil
}

// BeginReview marks an open dispute as picked up by an admin
func (d *Dispute) BeginReview(timeProvider tport.TimeProvider) error {
	if d.Status != DisputeOpen {
		return d.reject(OpBeginReview)
	}
	now := timeProvider.Now()
	d.Status = DisputeUnderReview
	d.ReviewStartedAt = &now
	d.UpdatedAt = now
	return nil
}

// SetAdminNotes replaces the internal notes. Allowed at any status.
func (d *Dispute) SetAdminNotes(notes string, timeProvider tport.TimeProvider) error {
	if len(notes) > MaxAdminNotesLength {
		return errs.ErrInvalidRequest
	}
	d.AdminNotes = notes
	d.UpdatedAt = timeProvider.Now()
	return nil
}

// Resolve records the decided split. The caller validates the amounts
// against the transaction before calling.
func (d *Dispute) Resolve(
	adminID string,
	outcome DisputeOutcome,
	resolution string,
	refundAmount, sellerAmount int64,
	timeProvider tport.TimeProvider,
) error {
	if !d.Status.IsActive() {
		return d.reject(OpResolve)
	}
	if !outcome.IsValid() || len(resolution) > MaxResolutionTextLength {
		return errs.ErrInvalidRequest
	}
	now := timeProvider.Now()
	d.Status = DisputeResolved
	d.Outcome = outcome
	d.Resolution = resolution
	d.RefundAmount = &refundAmount
	d.SellerAmount = &sellerAmount
	d.ResolvedBy = adminID
	d.ResolvedAt = &now
	d.Settlement = SettlementPending
	d.UpdatedAt = now
	return nil
}

// Close ends an active dispute without moving money
func (d *Dispute) Close(adminID, note string, timeProvider tport.TimeProvider) error {
	if !d.Status.IsActive() {
		return d.reject(OpClose)
	}
	if len(note) > MaxResolutionTextLength {
		return errs.ErrInvalidRequest
	}
	now := timeProvider.Now()
	d.Status = DisputeClosed
	d.ClosingNote = note
	d.ResolvedBy = adminID
	d.ClosedAt = &now
	d.UpdatedAt = now
	return nil
}

// RecordSettlement stores how many of the decided payouts went through
func (d *Dispute) RecordSettlement(state SettlementState, timeProvider tport.TimeProvider) {
	d.Settlement = state
	d.UpdatedAt = timeProvider.Now()
}

// NeedsSettlement reports whether resolution payouts are still outstanding
func (d *Dispute) NeedsSettlement() bool {
	return d.Status == DisputeResolved && (d.Settlement == SettlementPending || d.Settlement == SettlementPartial)
}

// Clone returns a deep copy safe to mutate independently
func (d *Dispute) Clone() *Dispute {
	c := *d
	c.BuyerEvidence = cloneEvidence(d.BuyerEvidence)
	c.SellerEvidence = cloneEvidence(d.SellerEvidence)
	c.ReviewStartedAt = cloneTime(d.ReviewStartedAt)
	c.ResolvedAt = cloneTime(d.ResolvedAt)
	c.ClosedAt = cloneTime(d.ClosedAt)
	if d.RefundAmount != nil {
		v := *d.RefundAmount
		c.RefundAmount = &v
	}
	if d.SellerAmount != nil {
		v := *d.SellerAmount
		c.SellerAmount = &v
	}
	return &c
}

func cloneEvidence(b *EvidenceBundle) *EvidenceBundle {
	if b == nil {
		return nil
	}
	c := *b
	c.Photos = append([]string(nil), b.Photos...)
	return &c
}
