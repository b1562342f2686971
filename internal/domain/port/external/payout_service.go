package external

import (
	"context"
	"errors"
)

// ErrPayoutDeclined marks a definitive provider rejection: no money moved and
// the same reference may be retried. Any other error leaves the outcome unknown.
var ErrPayoutDeclined = errors.New("payout declined")

// PayoutService moves money out of escrow to a user.
// Calls with the same reference must take effect at most once.
type PayoutService interface {
	ReleaseFunds(ctx context.Context, recipientID string, amount int64, reference string) error
}
