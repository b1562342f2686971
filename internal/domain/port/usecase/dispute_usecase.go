package usecase

import (
	"context"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// OpenDisputeRequest is a party's complaint about a transaction
type OpenDisputeRequest struct {
	TransactionID string
	ActingUserID  string
	Reason        entity.DisputeReason
	Description   string
}

// ResolveDisputeRequest is an admin's decision on how to split the escrowed amount.
// An empty Outcome is inferred: cancel when SellerAmount is zero, complete otherwise.
type ResolveDisputeRequest struct {
	DisputeID    string
	AdminID      string
	Outcome      entity.DisputeOutcome
	Resolution   string
	RefundAmount int64
	SellerAmount int64
}

// DisputeUseCase mediates disagreements on transactions
type DisputeUseCase interface {
	OpenDispute(ctx context.Context, req OpenDisputeRequest) (*entity.Dispute, error)
	SubmitEvidence(ctx context.Context, disputeID, actingUserID string, bundle entity.EvidenceBundle) (*entity.Dispute, error)
	BeginReview(ctx context.Context, disputeID, adminID string) (*entity.Dispute, error)
	AddAdminNotes(ctx context.Context, disputeID, adminID, notes string) (*entity.Dispute, error)
	// ResolveDispute returns the resolved dispute together with a payout
	// error when the decided money could not be moved yet
	ResolveDispute(ctx context.Context, req ResolveDisputeRequest) (*entity.Dispute, error)
	CloseDispute(ctx context.Context, disputeID, adminID, note string) (*entity.Dispute, error)
	RetryPayouts(ctx context.Context, disputeID string) (*entity.Dispute, error)
	GetDispute(ctx context.Context, disputeID, actingUserID string) (*entity.Dispute, error)
	GetDisputeForTransaction(ctx context.Context, transactionID, actingUserID string) (*entity.Dispute, error)
}
