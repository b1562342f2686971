// Package invariant holds the predicates every escrow mutation is checked against.
package invariant

import (
	"math"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
)

// ValidateSplit reports whether a dispute split is non-negative and sums exactly to total
func ValidateSplit(total, refundAmount, sellerAmount int64) bool {
	if total <= 0 || refundAmount < 0 || sellerAmount < 0 {
		return false
	}
	if refundAmount > math.MaxInt64-sellerAmount {
		return false
	}
	return refundAmount+sellerAmount == total
}

// ValidateCommission reports whether a transaction's split is internally consistent
func ValidateCommission(txn *entity.Transaction) bool {
	return txn.Commission >= 0 && txn.SellerAmount >= 0 && txn.Commission+txn.SellerAmount == txn.Amount
}

// ValidateRoleForTransition reports whether actingUserID holds party on txn
func ValidateRoleForTransition(txn *entity.Transaction, actingUserID string, required entity.Party) bool {
	if actingUserID == "" {
		return false
	}
	return txn.UserFor(required) == actingUserID
}

// IsTerminal reports whether status admits no further lifecycle change
func IsTerminal(status entity.TransactionStatus) bool {
	return status.IsTerminal()
}

// RequireRole returns an authorization error unless actingUserID holds party on txn
func RequireRole(txn *entity.Transaction, actingUserID string, required entity.Party, operation string) error {
	if ValidateRoleForTransition(txn, actingUserID, required) {
		return nil
	}
	return errs.NewAuthorizationError(actingUserID, operation, string(required))
}

// RequireParty returns the caller's party, or an authorization error when
// they are neither buyer nor seller
func RequireParty(txn *entity.Transaction, actingUserID, operation string) (entity.Party, error) {
	party, ok := txn.PartyOf(actingUserID)
	if !ok {
		return "", errs.NewAuthorizationError(actingUserID, operation, "buyer or seller")
	}
	return party, nil
}

// RequireSplit returns a split error unless the amounts cover total exactly
func RequireSplit(disputeID string, total, refundAmount, sellerAmount int64) error {
	if ValidateSplit(total, refundAmount, sellerAmount) {
		return nil
	}
	return errs.NewSplitError(disputeID, total, refundAmount, sellerAmount)
}
