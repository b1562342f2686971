package payout

import (
	"context"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
)

// Transfer is one money movement booked by the simulated provider
type Transfer struct {
	Reference   string
	RecipientID string
	Amount      int64
	BookedAt    time.Time
}

// SimulatedPayoutService is an in-process ledger honoring reference idempotency.
// It backs local runs and tests where no real provider is configured.
type SimulatedPayoutService struct {
	mu           sync.Mutex
	transfers    map[string]Transfer
	declined     map[string]bool
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

var _ external.PayoutService = (*SimulatedPayoutService)(nil)

// NewSimulatedPayoutService creates an empty ledger
func NewSimulatedPayoutService(logger coreport.Logger, timeProvider coreport.TimeProvider) *SimulatedPayoutService {
	return &SimulatedPayoutService{
		transfers:    make(map[string]Transfer),
		declined:     make(map[string]bool),
		logger:       logger.Named("payout_simulated"),
		timeProvider: timeProvider,
	}
}

// DeclineRecipient makes every future transfer to recipientID fail definitively
func (s *SimulatedPayoutService) DeclineRecipient(recipientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.declined[recipientID] = true
}

// ReleaseFunds books the transfer once per reference
func (s *SimulatedPayoutService) ReleaseFunds(ctx context.Context, recipientID string, amount int64, reference string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", external.ErrPayoutDeclined)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.transfers[reference]; ok {
		if existing.RecipientID != recipientID || existing.Amount != amount {
			return fmt.Errorf("%w: reference %s reused with different parameters", external.ErrPayoutDeclined, reference)
		}
		s.logger.Debug("Duplicate transfer ignored", map[string]any{"reference": reference})
		return nil
	}
	if s.declined[recipientID] {
		return fmt.Errorf("%w: recipient cannot receive funds", external.ErrPayoutDeclined)
	}

	s.transfers[reference] = Transfer{
		Reference:   reference,
		RecipientID: recipientID,
		Amount:      amount,
		BookedAt:    s.timeProvider.Now(),
	}
	s.logger.Info("Transfer booked", map[string]any{
		"reference": reference,
		"amount":    amount,
	})
	return nil
}

// Transfers returns a snapshot of the ledger
func (s *SimulatedPayoutService) Transfers() []Transfer {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Transfer, 0, len(s.transfers))
	for _, t := range s.transfers {
		result = append(result, t)
	}
	return result
}

// Total returns the sum transferred to recipientID
func (s *SimulatedPayoutService) Total(recipientID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, t := range s.transfers {
		if t.RecipientID == recipientID {
			total += t.Amount
		}
	}
	return total
}
