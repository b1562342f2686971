package invariant

import (
	"math"
	"testing"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSplit(t *testing.T) {
	testCases := []struct {
		name     string
		total    int64
		refund   int64
		seller   int64
		expected bool
	}{
		{"full refund", 10000, 10000, 0, true},
		{"full release", 10000, 0, 10000, true},
		{"partial split", 10000, 7000, 3000, true},
		{"short by one", 10000, 7000, 2999, false},
		{"over by one", 10000, 7000, 3001, false},
		{"negative refund", 10000, -1, 10001, false},
		{"negative seller", 10000, 10001, -1, false},
		{"zero total", 0, 0, 0, false},
		{"overflow", 10, math.MaxInt64, 1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ValidateSplit(tc.total, tc.refund, tc.seller))
		})
	}
}

func TestValidateSplitProperty(t *testing.T) {
	// every non-negative pair accepted must reproduce the total
	for total := int64(1); total <= 50; total++ {
		for refund := int64(-2); refund <= total+2; refund++ {
			for seller := int64(-2); seller <= total+2; seller++ {
				if ValidateSplit(total, refund, seller) {
					require.Equal(t, total, refund+seller)
					require.GreaterOrEqual(t, refund, int64(0))
					require.GreaterOrEqual(t, seller, int64(0))
				} else {
					require.False(t, refund >= 0 && seller >= 0 && refund+seller == total)
				}
			}
		}
	}
}

func TestValidateRoleForTransition(t *testing.T) {
	txn := &entity.Transaction{ID: "tx-1", BuyerID: "buyer-1", SellerID: "seller-1"}

	t.Run("should accept the matching party", func(t *testing.T) {
		assert.True(t, ValidateRoleForTransition(txn, "buyer-1", entity.PartyBuyer))
		assert.True(t, ValidateRoleForTransition(txn, "seller-1", entity.PartySeller))
	})

	t.Run("should reject the other party and strangers", func(t *testing.T) {
		assert.False(t, ValidateRoleForTransition(txn, "seller-1", entity.PartyBuyer))
		assert.False(t, ValidateRoleForTransition(txn, "buyer-1", entity.PartySeller))
		assert.False(t, ValidateRoleForTransition(txn, "someone", entity.PartyBuyer))
		assert.False(t, ValidateRoleForTransition(txn, "", entity.PartyBuyer))
	})

	t.Run("should return typed error from RequireRole", func(t *testing.T) {
		err := RequireRole(txn, "buyer-1", entity.PartySeller, entity.OpShip)
		require.Error(t, err)
		assert.True(t, errs.IsUnauthorizedError(err))

		var authErr *errs.AuthorizationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "seller", authErr.RequiredRole)
	})

	t.Run("should resolve party for either side", func(t *testing.T) {
		party, err := RequireParty(txn, "seller-1", entity.OpOpenDispute)
		require.NoError(t, err)
		assert.Equal(t, entity.PartySeller, party)

		_, err = RequireParty(txn, "neighbor", entity.OpOpenDispute)
		assert.True(t, errs.IsUnauthorizedError(err))
	})
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(entity.StatusCompleted))
	assert.True(t, IsTerminal(entity.StatusCancelled))
	for _, s := range []entity.TransactionStatus{
		entity.StatusPending, entity.StatusPaid, entity.StatusShipped,
		entity.StatusDelivered, entity.StatusDisputed,
	} {
		assert.False(t, IsTerminal(s), string(s))
	}
}

func TestValidateCommission(t *testing.T) {
	assert.True(t, ValidateCommission(&entity.Transaction{Amount: 10000, Commission: 500, SellerAmount: 9500}))
	assert.False(t, ValidateCommission(&entity.Transaction{Amount: 10000, Commission: 500, SellerAmount: 9000}))
}

func TestRequireSplit(t *testing.T) {
	require.NoError(t, RequireSplit("d-1", 100, 60, 40))

	err := RequireSplit("d-1", 100, 60, 30)
	assert.ErrorIs(t, err, errs.ErrInvalidAmounts)
}
