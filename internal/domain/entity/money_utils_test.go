package entity

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommission(t *testing.T) {
	testCases := []struct {
		name               string
		amount             int64
		basisPoints        int64
		expectedCommission int64
		expectedSeller     int64
	}{
		{"five percent", 10000, 500, 500, 9500},
		{"rounds down", 999, 500, 49, 950},
		{"zero rate", 10000, 0, 0, 10000},
		{"full rate", 10000, 10000, 10000, 0},
		{"one cent", 1, 500, 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			commission, seller, err := SplitCommission(tc.amount, tc.basisPoints)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCommission, commission)
			assert.Equal(t, tc.expectedSeller, seller)
			assert.Equal(t, tc.amount, commission+seller)
		})
	}

	t.Run("should reject rate outside range", func(t *testing.T) {
		_, _, err := SplitCommission(10000, 10001)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject overflow", func(t *testing.T) {
		_, _, err := SplitCommission(math.MaxInt64, 500)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "10.15", FormatMinorUnits(1015))
	assert.Equal(t, "0.05", FormatMinorUnits(5))
	assert.Equal(t, "0.00", FormatMinorUnits(0))
	assert.Equal(t, "-1.50", FormatMinorUnits(-150))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(1))
	assert.ErrorIs(t, ValidateAmount(0), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(-5), errs.ErrInvalidAmount)
}
