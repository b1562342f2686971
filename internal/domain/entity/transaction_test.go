package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(t *testing.T, mockTime *coremocks.MockTimeProvider) *Transaction {
	t.Helper()
	tx, err := NewTransaction("tx-1", "buyer-1", "seller-1", "item-1", 10000, 500,
		DeliveryDetails{Method: DeliveryFaceToFace}, mockTime)
	require.NoError(t, err)
	return tx
}

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("should create pending transaction with commission split", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)

		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, ReleaseNone, tx.ReleaseState)
		assert.Equal(t, int64(10000), tx.Amount)
		assert.Equal(t, int64(500), tx.Commission)
		assert.Equal(t, int64(9500), tx.SellerAmount)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Nil(t, tx.PaidAt)
	})

	t.Run("should reject empty identifiers", func(t *testing.T) {
		_, err := NewTransaction("tx-1", "", "seller-1", "item-1", 10000, 500,
			DeliveryDetails{Method: DeliveryFaceToFace}, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		_, err := NewTransaction("tx-1", "buyer-1", "seller-1", "item-1", 0, 500,
			DeliveryDetails{Method: DeliveryFaceToFace}, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject unknown delivery method", func(t *testing.T) {
		_, err := NewTransaction("tx-1", "buyer-1", "seller-1", "item-1", 10000, 500,
			DeliveryDetails{Method: "teleport"}, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestTransactionLifecycle(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("should walk the happy path with timestamps", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)

		require.NoError(t, tx.MarkPaid(mockTime))
		require.NoError(t, tx.MarkShipped(mockTime))
		require.NoError(t, tx.MarkDelivered(mockTime))
		require.NoError(t, tx.BeginRelease(mockTime))
		assert.Equal(t, StatusDelivered, tx.Status)
		assert.Equal(t, ReleaseInProgress, tx.ReleaseState)
		require.NoError(t, tx.FinishRelease(mockTime))

		assert.Equal(t, StatusCompleted, tx.Status)
		assert.Equal(t, ReleaseDone, tx.ReleaseState)
		require.NotNil(t, tx.PaidAt)
		require.NotNil(t, tx.ShippedAt)
		require.NotNil(t, tx.DeliveredAt)
		require.NotNil(t, tx.CompletedAt)
		assert.True(t, tx.IsTerminal())
	})

	t.Run("should reject out of order transitions", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)

		err := tx.MarkShipped(mockTime)
		require.Error(t, err)
		assert.True(t, errs.IsInvalidTransitionError(err))

		var transitionErr *errs.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, string(StatusPending), transitionErr.Status)
		assert.Equal(t, StatusPending, tx.Status)

		assert.True(t, errs.IsInvalidTransitionError(tx.MarkDelivered(mockTime)))
		assert.True(t, errs.IsInvalidTransitionError(tx.BeginRelease(mockTime)))
	})

	t.Run("should allow cancel only while pending", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		require.NoError(t, tx.Cancel(mockTime))
		assert.Equal(t, StatusCancelled, tx.Status)
		require.NotNil(t, tx.CancelledAt)

		paid := newTestTransaction(t, mockTime)
		require.NoError(t, paid.MarkPaid(mockTime))
		assert.True(t, errs.IsInvalidTransitionError(paid.Cancel(mockTime)))
	})

	t.Run("should report conflict when release already in progress", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		require.NoError(t, tx.MarkPaid(mockTime))
		require.NoError(t, tx.MarkShipped(mockTime))
		require.NoError(t, tx.MarkDelivered(mockTime))
		require.NoError(t, tx.BeginRelease(mockTime))

		assert.True(t, errs.IsConflictError(tx.BeginRelease(mockTime)))
		assert.True(t, errs.IsConflictError(tx.MarkDisputed(mockTime)))
	})

	t.Run("should allow a failed release to be resumed", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		require.NoError(t, tx.MarkPaid(mockTime))
		require.NoError(t, tx.MarkShipped(mockTime))
		require.NoError(t, tx.MarkDelivered(mockTime))
		require.NoError(t, tx.BeginRelease(mockTime))
		require.NoError(t, tx.FailRelease(mockTime))
		assert.Equal(t, ReleaseFailed, tx.ReleaseState)
		assert.Equal(t, StatusDelivered, tx.Status)

		require.NoError(t, tx.BeginRelease(mockTime))
		require.NoError(t, tx.FinishRelease(mockTime))
		assert.Equal(t, StatusCompleted, tx.Status)
	})

	t.Run("should keep terminal states immutable", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		require.NoError(t, tx.Cancel(mockTime))

		for _, step := range []func() error{
			func() error { return tx.MarkPaid(mockTime) },
			func() error { return tx.MarkShipped(mockTime) },
			func() error { return tx.MarkDelivered(mockTime) },
			func() error { return tx.BeginRelease(mockTime) },
			func() error { return tx.MarkDisputed(mockTime) },
			func() error { return tx.Cancel(mockTime) },
		} {
			assert.True(t, errs.IsInvalidTransitionError(step()))
		}
		assert.Equal(t, StatusCancelled, tx.Status)
	})
}

func TestTransactionDispute(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("should dispute any non-terminal status", func(t *testing.T) {
		for _, status := range []TransactionStatus{StatusPending, StatusPaid, StatusShipped, StatusDelivered} {
			tx := newTestTransaction(t, mockTime)
			tx.Status = status
			require.NoError(t, tx.MarkDisputed(mockTime), string(status))
			assert.Equal(t, StatusDisputed, tx.Status)
		}
	})

	t.Run("should report conflict for a second dispute", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		require.NoError(t, tx.MarkDisputed(mockTime))
		assert.True(t, errs.IsConflictError(tx.MarkDisputed(mockTime)))
	})

	t.Run("should block the normal lifecycle while disputed", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		tx.Status = StatusShipped
		require.NoError(t, tx.MarkDisputed(mockTime))
		assert.True(t, errs.IsInvalidTransitionError(tx.MarkDelivered(mockTime)))
		assert.True(t, errs.IsInvalidTransitionError(tx.BeginRelease(mockTime)))
	})

	t.Run("should lift a dispute back to the previous status", func(t *testing.T) {
		for _, status := range []TransactionStatus{StatusPending, StatusPaid, StatusShipped, StatusDelivered} {
			tx := newTestTransaction(t, mockTime)
			tx.Status = status
			require.NoError(t, tx.MarkDisputed(mockTime))
			require.NoError(t, tx.LiftDispute(status, mockTime), string(status))
			assert.Equal(t, status, tx.Status)
		}
	})

	t.Run("should continue the lifecycle after a lifted dispute", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		require.NoError(t, tx.MarkPaid(mockTime))
		require.NoError(t, tx.MarkDisputed(mockTime))
		require.NoError(t, tx.LiftDispute(StatusPaid, mockTime))

		require.NoError(t, tx.MarkShipped(mockTime))
		require.NoError(t, tx.MarkDisputed(mockTime))
		assert.Equal(t, StatusDisputed, tx.Status)
	})

	t.Run("should reject lifting without a dispute or to a terminal status", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		assert.True(t, errs.IsInvalidTransitionError(tx.LiftDispute(StatusPending, mockTime)))

		require.NoError(t, tx.MarkDisputed(mockTime))
		for _, status := range []TransactionStatus{StatusCompleted, StatusCancelled, StatusDisputed, ""} {
			assert.ErrorIs(t, tx.LiftDispute(status, mockTime), errs.ErrInvalidRequest, string(status))
		}
		assert.Equal(t, StatusDisputed, tx.Status)
	})

	t.Run("should settle to the chosen outcome", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		require.NoError(t, tx.MarkDisputed(mockTime))
		require.NoError(t, tx.SettleDispute(OutcomeCancel, mockTime))
		assert.Equal(t, StatusCancelled, tx.Status)
		assert.Equal(t, ReleaseInProgress, tx.ReleaseState)

		require.NoError(t, tx.FinishRelease(mockTime))
		assert.Equal(t, StatusCancelled, tx.Status)
		assert.Equal(t, ReleaseDone, tx.ReleaseState)
	})
}

func TestTransactionTimestampsAdvance(t *testing.T) {
	start := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	newClock := func(t *testing.T) *coremocks.MockTimeProvider {
		tick := 0
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().RunAndReturn(func() time.Time {
			tick++
			return start.Add(time.Duration(tick) * time.Minute)
		}).Maybe()
		return clock
	}

	t.Run("should stamp each step after the previous one", func(t *testing.T) {
		clock := newClock(t)
		tx := newTestTransaction(t, clock)

		require.NoError(t, tx.MarkPaid(clock))
		require.NoError(t, tx.MarkShipped(clock))
		require.NoError(t, tx.MarkDelivered(clock))
		require.NoError(t, tx.BeginRelease(clock))
		require.NoError(t, tx.FinishRelease(clock))

		require.NotNil(t, tx.PaidAt)
		require.NotNil(t, tx.ShippedAt)
		require.NotNil(t, tx.DeliveredAt)
		require.NotNil(t, tx.CompletedAt)
		assert.True(t, tx.CreatedAt.Before(*tx.PaidAt))
		assert.True(t, tx.PaidAt.Before(*tx.ShippedAt))
		assert.True(t, tx.ShippedAt.Before(*tx.DeliveredAt))
		assert.True(t, tx.DeliveredAt.Before(*tx.CompletedAt))
		assert.Equal(t, *tx.CompletedAt, tx.UpdatedAt)
	})

	t.Run("should keep order across a lifted dispute", func(t *testing.T) {
		clock := newClock(t)
		tx := newTestTransaction(t, clock)

		require.NoError(t, tx.MarkPaid(clock))
		require.NoError(t, tx.MarkDisputed(clock))
		require.NoError(t, tx.LiftDispute(StatusPaid, clock))
		require.NoError(t, tx.MarkShipped(clock))
		require.NoError(t, tx.MarkDelivered(clock))

		assert.True(t, tx.PaidAt.Before(*tx.ShippedAt))
		assert.True(t, tx.ShippedAt.Before(*tx.DeliveredAt))
	})

	t.Run("should never reach delivered without a shipment", func(t *testing.T) {
		clock := newClock(t)
		for _, status := range []TransactionStatus{StatusPending, StatusPaid, StatusDisputed, StatusCancelled, StatusCompleted} {
			tx := newTestTransaction(t, clock)
			tx.Status = status
			assert.True(t, errs.IsInvalidTransitionError(tx.MarkDelivered(clock)), string(status))
			assert.Nil(t, tx.DeliveredAt)
			assert.Nil(t, tx.ShippedAt)
		}

		tx := newTestTransaction(t, clock)
		require.NoError(t, tx.MarkPaid(clock))
		require.NoError(t, tx.MarkDisputed(clock))
		require.NoError(t, tx.LiftDispute(StatusPaid, clock))
		assert.True(t, errs.IsInvalidTransitionError(tx.MarkDelivered(clock)))
		assert.Nil(t, tx.DeliveredAt)
	})
}

func TestTransactionParty(t *testing.T) {
	tx := &Transaction{BuyerID: "b", SellerID: "s"}

	party, ok := tx.PartyOf("b")
	assert.True(t, ok)
	assert.Equal(t, PartyBuyer, party)

	party, ok = tx.PartyOf("s")
	assert.True(t, ok)
	assert.Equal(t, PartySeller, party)

	_, ok = tx.PartyOf("x")
	assert.False(t, ok)
	_, ok = tx.PartyOf("")
	assert.False(t, ok)

	assert.Equal(t, "s", tx.UserFor(PartySeller))
}

func TestTransactionClone(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	tx := &Transaction{ID: "tx-1", PaidAt: &now}

	c := tx.Clone()
	later := now.Add(time.Hour)
	*c.PaidAt = later

	assert.Equal(t, now, *tx.PaidAt)
}
