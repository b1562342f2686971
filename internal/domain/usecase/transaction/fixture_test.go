package transaction

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/payout"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/repository/memory"
	coremocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/core"
	externalmocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/external"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	buyerID  = "buyer-1"
	sellerID = "seller-1"
	adminID  = "admin-1"
	itemID   = "item-1"
)

type fixture struct {
	service *Service
	uow     *memory.UnitOfWork
	catalog *memory.ItemCatalog
	payouts *externalmocks.MockPayoutService
	manager *TransactionManager

	mu  sync.Mutex
	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{now: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)}

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().RunAndReturn(f.clock).Maybe()
	mockTime.EXPECT().Since(mock.Anything).Return(coreport.Duration(0)).Maybe()

	var seq atomic.Int64
	mockIDs := coremocks.NewMockIDGenerator(t)
	mockIDs.EXPECT().NewID().RunAndReturn(func() string {
		return fmt.Sprintf("id-%d", seq.Add(1))
	}).Maybe()

	mockMetrics := coremocks.NewMockMetricsRecorder(t)
	mockMetrics.EXPECT().TransitionApplied(mock.Anything, mock.Anything, mock.Anything).Maybe()
	mockMetrics.EXPECT().TransitionRejected(mock.Anything, mock.Anything).Maybe()
	mockMetrics.EXPECT().PayoutAttempted(mock.Anything, mock.Anything).Maybe()
	mockMetrics.EXPECT().ObserveRelease(mock.Anything, mock.Anything).Maybe()

	mockNotifier := externalmocks.NewMockNotifier(t)
	mockNotifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	mockAccess := externalmocks.NewMockAccessControl(t)
	mockAccess.EXPECT().IsAdmin(mock.Anything, adminID).Return(true, nil).Maybe()
	mockAccess.EXPECT().IsAdmin(mock.Anything, mock.Anything).Return(false, nil).Maybe()

	f.payouts = externalmocks.NewMockPayoutService(t)

	store := memory.NewStore(mockTime)
	f.uow = memory.NewUnitOfWork(store)
	f.catalog = memory.NewItemCatalog(entity.Item{ID: itemID, SellerID: sellerID, Price: 10000, Available: true})

	log := logger.NewNoopLogger()
	f.manager = NewTransactionManager(log, 0)
	t.Cleanup(f.manager.Shutdown)

	settler := payout.NewSettler(f.uow, memory.NewReleaseLeaseRepository(store), f.payouts, mockIDs, mockTime, log, mockMetrics,
		payout.Config{LeaseTimeout: time.Minute, MaxAttempts: 1, RetryBaseDelay: time.Millisecond})

	f.service = NewTransactionService(Dependencies{
		UnitOfWork:   f.uow,
		Manager:      f.manager,
		Settler:      settler,
		Catalog:      f.catalog,
		Access:       mockAccess,
		Notifier:     mockNotifier,
		IDs:          mockIDs,
		TimeProvider: mockTime,
		Logger:       log,
		Metrics:      mockMetrics,
	}, Config{CommissionBasisPoints: 500})
	return f
}

func (f *fixture) clock() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fixture) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fixture) create(t *testing.T) *entity.Transaction {
	t.Helper()
	txn, err := f.service.CreateTransaction(context.Background(), usecase.CreateTransactionRequest{
		BuyerID:  buyerID,
		ItemID:   itemID,
		Delivery: entity.DeliveryDetails{Method: entity.DeliveryFaceToFace},
	})
	require.NoError(t, err)
	return txn
}

// delivered walks a new transaction to DELIVERED
func (f *fixture) delivered(t *testing.T) *entity.Transaction {
	t.Helper()
	ctx := context.Background()
	txn := f.create(t)
	_, err := f.service.ConfirmPayment(ctx, txn.ID, buyerID)
	require.NoError(t, err)
	_, err = f.service.MarkShipped(ctx, txn.ID, sellerID)
	require.NoError(t, err)
	txn, err = f.service.MarkDelivered(ctx, txn.ID, buyerID)
	require.NoError(t, err)
	return txn
}

func (f *fixture) stored(t *testing.T, id string) *entity.Transaction {
	t.Helper()
	txn, err := f.uow.GetTransactionRepository(context.Background()).GetByID(context.Background(), id)
	require.NoError(t, err)
	return txn
}
