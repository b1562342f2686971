// Package notifier delivers committed lifecycle events to the parties
// without ever blocking or failing the operation that produced them.
package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
)

// Sink is one delivery channel for events
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event entity.Event) error
}

// AsyncNotifier queues events and fans them out to its sinks on a worker goroutine.
// A full queue drops the event.
type AsyncNotifier struct {
	sinks       []Sink
	queue       chan entity.Event
	logger      coreport.Logger
	sendTimeout time.Duration
	wg          sync.WaitGroup
	closeOnce   sync.Once
	mu          sync.RWMutex
	closed      bool
}

var _ external.Notifier = (*AsyncNotifier)(nil)

// NewAsyncNotifier starts the delivery worker
func NewAsyncNotifier(logger coreport.Logger, queueSize int, sendTimeout time.Duration, sinks ...Sink) *AsyncNotifier {
	if queueSize <= 0 {
		queueSize = 256
	}
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	n := &AsyncNotifier{
		sinks:       sinks,
		queue:       make(chan entity.Event, queueSize),
		logger:      logger.Named("notifier"),
		sendTimeout: sendTimeout,
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// Notify enqueues the event
func (n *AsyncNotifier) Notify(_ context.Context, event entity.Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}

	select {
	case n.queue <- event:
	default:
		n.logger.Warn("Notification queue full, dropping event", map[string]any{
			"type":           string(event.Type),
			"transaction_id": event.TransactionID,
		})
	}
}

func (n *AsyncNotifier) run() {
	defer n.wg.Done()
	for event := range n.queue {
		for _, sink := range n.sinks {
			n.deliver(sink, event)
		}
	}
}

func (n *AsyncNotifier) deliver(sink Sink, event entity.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), n.sendTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Notification sink panicked", map[string]any{
				"sink":  sink.Name(),
				"panic": r,
			})
		}
	}()

	if err := sink.Deliver(ctx, event); err != nil {
		n.logger.Warn("Notification delivery failed", map[string]any{
			"sink":           sink.Name(),
			"type":           string(event.Type),
			"transaction_id": event.TransactionID,
			"error":          err.Error(),
		})
	}
}

// Close stops accepting events and waits for the queue to drain
func (n *AsyncNotifier) Close() {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		n.closed = true
		close(n.queue)
		n.mu.Unlock()
		n.wg.Wait()
	})
}
