package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
)

// BasisPointsScale is the denominator for commission rates: 10000 bps = 100%
const BasisPointsScale = 10000

// ValidateAmount checks that a minor-unit amount is positive
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d must be positive", errs.ErrInvalidAmount, amount)
	}
	return nil
}

// SplitCommission divides amount into the platform commission and the seller's
// share. The commission is rounded down so the seller never receives less
// than amount minus the nominal rate, and the two parts always sum to amount.
func SplitCommission(amount, basisPoints int64) (commission, sellerAmount int64, err error) {
	if err := ValidateAmount(amount); err != nil {
		return 0, 0, err
	}
	if basisPoints < 0 || basisPoints > BasisPointsScale {
		return 0, 0, fmt.Errorf("%w: commission rate %d bps out of range", errs.ErrInvalidAmount, basisPoints)
	}
	if basisPoints != 0 && amount > math.MaxInt64/basisPoints {
		return 0, 0, errs.ErrAmountOverflow
	}
	commission = amount * basisPoints / BasisPointsScale
	return commission, amount - commission, nil
}

// FormatMinorUnits renders an amount in minor units with two decimals,
// e.g. 1015 becomes "10.15"
func FormatMinorUnits(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		// MinInt64 has no positive counterpart
		if amount == math.MinInt64 {
			return "-92233720368547758.08"
		}
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
