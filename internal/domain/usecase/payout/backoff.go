package payout

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
)

// transferWithRetry calls the provider until it confirms, declines, or
// attempts run out. Every call carries the same reference, so a retry after
// an ambiguous failure cannot pay twice.
func (s *Settler) transferWithRetry(ctx context.Context, recipientID string, amount int64, reference string) error {
	attempts := s.cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	delay := s.cfg.RetryBaseDelay
	for attempt := 0; attempt < attempts; attempt++ {
		err = s.payouts.ReleaseFunds(ctx, recipientID, amount, reference)
		if err == nil || errors.Is(err, external.ErrPayoutDeclined) {
			return err
		}
		if ctx.Err() != nil || attempt == attempts-1 {
			break
		}

		sleep := jitter(delay)
		s.logger.Warn("Payout call failed, retrying", map[string]any{
			"reference":   reference,
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"retry_after": sleep.String(),
			"error":       err.Error(),
		})

		select {
		case <-ctx.Done():
			return err
		case <-time.After(sleep):
		}
		delay *= 2
	}
	return err
}

// jitter spreads d by +-25%
func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	spread := int64(d / 4)
	return d - time.Duration(spread) + time.Duration(rand.Int63n(2*spread+1))
}
