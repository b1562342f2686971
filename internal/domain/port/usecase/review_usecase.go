package usecase

import "context"

// ReviewEligibility explains whether a review may be attached to a purchase
type ReviewEligibility struct {
	Eligible   bool
	BusinessID string
	Reason     string
}

// ReviewUseCase checks the purchase gate for business reviews
type ReviewUseCase interface {
	// CanReview reports whether callerID bought the item, the transaction is
	// COMPLETED and the item belongs to a business
	CanReview(ctx context.Context, transactionID, callerID string) (bool, error)

	// CheckEligibility explains the answer of CanReview and rejects callers
	// outside the transaction
	CheckEligibility(ctx context.Context, transactionID, userID string) (*ReviewEligibility, error)
}
