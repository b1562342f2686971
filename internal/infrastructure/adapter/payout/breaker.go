package payout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
)

// State represents the circuit breaker state
type State int

const (
	StateClosed   State = iota // requests flow through
	StateOpen                  // requests are rejected without calling the provider
	StateHalfOpen              // one trial request is in flight
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned while the provider is considered unavailable
var ErrCircuitOpen = fmt.Errorf("%w: payout provider circuit open", external.ErrPayoutDeclined)

// CircuitBreaker wraps a PayoutService and stops calling it after threshold
// consecutive unknown outcomes. Declines are answers, not failures.
type CircuitBreaker struct {
	next         external.PayoutService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu           sync.Mutex
	state        State
	failures     int
	openedAt     time.Time
	threshold    int
	openDuration time.Duration
	onTransition func(from, to State)
}

var _ external.PayoutService = (*CircuitBreaker)(nil)

// NewCircuitBreaker opens after threshold consecutive failures and lets a trial request through after openDuration
func NewCircuitBreaker(next external.PayoutService, threshold int, openDuration time.Duration,
	timeProvider coreport.TimeProvider, logger coreport.Logger) *CircuitBreaker {
	if threshold <= 0 {
		threshold = 5
	}
	if openDuration <= 0 {
		openDuration = 30 * time.Second
	}
	return &CircuitBreaker{
		next:         next,
		timeProvider: timeProvider,
		logger:       logger.Named("payout_breaker"),
		threshold:    threshold,
		openDuration: openDuration,
	}
}

// OnTransition sets a callback invoked on state changes
func (b *CircuitBreaker) OnTransition(fn func(from, to State)) {
	b.mu.Lock()
	b.onTransition = fn
	b.mu.Unlock()
}

// State returns the current state
func (b *CircuitBreaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// ReleaseFunds forwards to the wrapped provider while the circuit allows it
func (b *CircuitBreaker) ReleaseFunds(ctx context.Context, recipientID string, amount int64, reference string) error {
	if !b.allow() {
		return ErrCircuitOpen
	}

	err := b.next.ReleaseFunds(ctx, recipientID, amount, reference)
	switch {
	case err == nil, errors.Is(err, external.ErrPayoutDeclined):
		b.recordSuccess()
	case errors.Is(err, context.Canceled):
		b.release()
	default:
		b.recordFailure()
	}
	return err
}

func (b *CircuitBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.timeProvider.Since(b.openedAt).Std() >= b.openDuration {
			b.transition(StateHalfOpen)
			return true
		}
		return false
	case StateHalfOpen:
		return false
	default:
		return true
	}
}

func (b *CircuitBreaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.transition(StateClosed)
	}
	b.failures = 0
}

func (b *CircuitBreaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	if b.state == StateHalfOpen || b.failures >= b.threshold {
		if b.state != StateOpen {
			b.transition(StateOpen)
		}
		b.openedAt = b.timeProvider.Now()
	}
}

// release gives the trial slot back when the caller went away
func (b *CircuitBreaker) release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.transition(StateOpen)
	}
}

// transition must be called with mu held
func (b *CircuitBreaker) transition(to State) {
	from := b.state
	b.state = to
	b.logger.Warn("Payout circuit breaker state changed", map[string]any{
		"from": from.String(),
		"to":   to.String(),
	})
	if b.onTransition != nil {
		b.onTransition(from, to)
	}
}
