package dispute

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/payout"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/transaction"
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
)

type fixture struct {
	disputes     *Service
	transactions *transaction.Service
	uow          *memory.UnitOfWork
	payouts      *externalmocks.MockPayoutService
	mockTime     *coremocks.MockTimeProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
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
	mockMetrics.EXPECT().DisputeStatusChanged(mock.Anything).Maybe()

	mockNotifier := externalmocks.NewMockNotifier(t)
	mockNotifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	mockAccess := externalmocks.NewMockAccessControl(t)
	mockAccess.EXPECT().IsAdmin(mock.Anything, adminID).Return(true, nil).Maybe()
	mockAccess.EXPECT().IsAdmin(mock.Anything, mock.Anything).Return(false, nil).Maybe()

	store := memory.NewStore(mockTime)
	uow := memory.NewUnitOfWork(store)
	payouts := externalmocks.NewMockPayoutService(t)
	log := logger.NewNoopLogger()

	manager := transaction.NewTransactionManager(log, 0)
	t.Cleanup(manager.Shutdown)
	settler := payout.NewSettler(uow, memory.NewReleaseLeaseRepository(store), payouts, mockIDs, mockTime, log, mockMetrics,
		payout.Config{LeaseTimeout: time.Minute, MaxAttempts: 1})

	return &fixture{
		disputes: NewDisputeService(Dependencies{
			UnitOfWork:   uow,
			Manager:      manager,
			Settler:      settler,
			Access:       mockAccess,
			Notifier:     mockNotifier,
			IDs:          mockIDs,
			TimeProvider: mockTime,
			Logger:       log,
			Metrics:      mockMetrics,
		}),
		transactions: transaction.NewTransactionService(transaction.Dependencies{
			UnitOfWork:   uow,
			Manager:      manager,
			Settler:      settler,
			Catalog:      memory.NewItemCatalog(entity.Item{ID: "item-1", SellerID: sellerID, Price: 10000, Available: true}),
			Access:       mockAccess,
			Notifier:     mockNotifier,
			IDs:          mockIDs,
			TimeProvider: mockTime,
			Logger:       log,
			Metrics:      mockMetrics,
		}, transaction.Config{CommissionBasisPoints: 500}),
		uow:      uow,
		payouts:  payouts,
		mockTime: mockTime,
	}
}

// paid returns a transaction in PAID
func (f *fixture) paid(t *testing.T) *entity.Transaction {
	t.Helper()
	ctx := context.Background()
	txn, err := f.transactions.CreateTransaction(ctx, usecase.CreateTransactionRequest{
		BuyerID:  buyerID,
		ItemID:   "item-1",
		Delivery: entity.DeliveryDetails{Method: entity.DeliveryCourier},
	})
	require.NoError(t, err)
	txn, err = f.transactions.ConfirmPayment(ctx, txn.ID, buyerID)
	require.NoError(t, err)
	return txn
}

func (f *fixture) open(t *testing.T, txn *entity.Transaction, by string) *entity.Dispute {
	t.Helper()
	d, err := f.disputes.OpenDispute(context.Background(), usecase.OpenDisputeRequest{
		TransactionID: txn.ID,
		ActingUserID:  by,
		Reason:        entity.ReasonItemNotReceived,
		Description:   "never arrived",
	})
	require.NoError(t, err)
	return d
}

func (f *fixture) transaction(t *testing.T, id string) *entity.Transaction {
	t.Helper()
	txn, err := f.uow.GetTransactionRepository(context.Background()).GetByID(context.Background(), id)
	require.NoError(t, err)
	return txn
}
