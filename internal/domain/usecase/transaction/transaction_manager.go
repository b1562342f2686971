package transaction

import (
	"context"
	"errors"
	"fmt"
	"sync"

	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
)

// ErrManagerClosed is returned for work submitted after Shutdown
var ErrManagerClosed = errors.New("transaction manager is shut down")

// DefaultQueueSize bounds how many operations may wait on one key
const DefaultQueueSize = 100

// TransactionManager runs operations that share a key strictly one after
// another, in arrival order. Operations on different keys run in parallel.
// A queue and its worker exist only while the key has pending work.
//
// fn must not call Execute for its own key; that would deadlock.
type TransactionManager struct {
	logger    coreport.Logger
	queueSize int

	mu      sync.Mutex
	queues  map[string]*keyQueue
	closed  bool
	workers sync.WaitGroup
}

type keyQueue struct {
	requests chan *operationRequest
	// pending counts requests registered on the queue and not yet finished.
	// Whoever drops it to zero removes the queue and closes requests.
	pending int
}

// operationRequest represents a queued operation
type operationRequest struct {
	ctx        context.Context
	key        string
	fn         func(ctx context.Context) error
	resultChan chan error
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(logger coreport.Logger, queueSize int) *TransactionManager {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &TransactionManager{
		logger:    logger.Named("transaction_manager"),
		queueSize: queueSize,
		queues:    make(map[string]*keyQueue),
	}
}

// Execute runs fn once every earlier operation on key has finished and
// returns its error. If ctx ends first, Execute returns ctx.Err(); an
// operation already handed to the worker is skipped when its ctx is done.
func (m *TransactionManager) Execute(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if fn == nil {
		panic("transaction manager operation cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	req := &operationRequest{
		ctx:        ctx,
		key:        key,
		fn:         fn,
		resultChan: make(chan error, 1),
	}

	queue, err := m.register(key)
	if err != nil {
		return err
	}

	select {
	case queue.requests <- req:
	case <-ctx.Done():
		m.logger.Warn("Context canceled while enqueueing operation", map[string]any{
			"key":   key,
			"error": ctx.Err().Error(),
		})
		m.finish(key, queue)
		return ctx.Err()
	}

	select {
	case err := <-req.resultChan:
		return err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for operation result", map[string]any{
			"key":   key,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (m *TransactionManager) register(key string) (*keyQueue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrManagerClosed
	}
	queue, ok := m.queues[key]
	if !ok {
		queue = &keyQueue{requests: make(chan *operationRequest, m.queueSize)}
		m.queues[key] = queue
		m.workers.Add(1)
		go m.processKey(key, queue)
		m.logger.Debug("Started operation queue worker", map[string]any{"key": key})
	}
	queue.pending++
	return queue, nil
}

// finish marks one request on queue as done
func (m *TransactionManager) finish(key string, queue *keyQueue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue.pending--
	if queue.pending == 0 {
		delete(m.queues, key)
		close(queue.requests)
	}
}

// processKey handles the worker goroutine for one key's queue
func (m *TransactionManager) processKey(key string, queue *keyQueue) {
	defer m.workers.Done()

	for req := range queue.requests {
		err := req.ctx.Err()
		if err == nil {
			err = m.run(req)
		}
		req.resultChan <- err
		m.finish(key, queue)
	}

	m.logger.Debug("Operation queue worker stopped", map[string]any{"key": key})
}

func (m *TransactionManager) run(req *operationRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Operation panicked", map[string]any{
				"key":   req.key,
				"panic": fmt.Sprint(r),
			})
			err = fmt.Errorf("operation on %s panicked: %v", req.key, r)
		}
	}()
	return req.fn(req.ctx)
}

// ActiveKeys reports how many keys currently have queued or running work
func (m *TransactionManager) ActiveKeys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queues)
}

// Shutdown rejects new work and waits for queued operations to drain
func (m *TransactionManager) Shutdown() {
	m.logger.Info("Shutting down transaction manager", nil)

	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.workers.Wait()
	m.logger.Info("Transaction manager shut down successfully", nil)
}
