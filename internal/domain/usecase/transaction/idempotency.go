package transaction

import (
	"context"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/payout"
)

// planRelease records the seller and platform payouts of a completion.
// References derive from the transaction ID, so a repeated call finds the
// existing rows instead of creating new ones.
func planRelease(ctx context.Context, repo persistence.PayoutRepository, timeProvider coreport.TimeProvider, txn *entity.Transaction) error {
	return payout.Plan(ctx, repo, timeProvider,
		payout.PlannedPayout{
			OwnerID:       txn.ID,
			TransactionID: txn.ID,
			Role:          entity.PayoutToSeller,
			RecipientID:   txn.SellerID,
			Amount:        txn.SellerAmount,
		},
		payout.PlannedPayout{
			OwnerID:       txn.ID,
			TransactionID: txn.ID,
			Role:          entity.PayoutToPlatform,
			Amount:        txn.Commission,
		},
	)
}
