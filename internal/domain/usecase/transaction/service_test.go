package transaction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("should create pending transaction at listing price", func(t *testing.T) {
		f := newFixture(t)
		txn := f.create(t)

		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Equal(t, sellerID, txn.SellerID)
		assert.Equal(t, int64(10000), txn.Amount)
		assert.Equal(t, int64(500), txn.Commission)
		assert.Equal(t, int64(9500), txn.SellerAmount)
		assert.Equal(t, entity.StatusPending, f.stored(t, txn.ID).Status)
	})

	t.Run("should reject invalid requests", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.Put(entity.Item{ID: "sold", SellerID: sellerID, Price: 500, Available: false})

		tests := []struct {
			name    string
			req     usecase.CreateTransactionRequest
			wantErr error
		}{
			{
				name:    "missing buyer",
				req:     usecase.CreateTransactionRequest{ItemID: itemID, Delivery: entity.DeliveryDetails{Method: entity.DeliveryCourier}},
				wantErr: errs.ErrInvalidRequest,
			},
			{
				name:    "unknown delivery method",
				req:     usecase.CreateTransactionRequest{BuyerID: buyerID, ItemID: itemID, Delivery: entity.DeliveryDetails{Method: "drone"}},
				wantErr: errs.ErrInvalidRequest,
			},
			{
				name:    "unknown item",
				req:     usecase.CreateTransactionRequest{BuyerID: buyerID, ItemID: "nope", Delivery: entity.DeliveryDetails{Method: entity.DeliveryCourier}},
				wantErr: errs.ErrItemNotFound,
			},
			{
				name:    "item not available",
				req:     usecase.CreateTransactionRequest{BuyerID: buyerID, ItemID: "sold", Delivery: entity.DeliveryDetails{Method: entity.DeliveryCourier}},
				wantErr: errs.ErrConflict,
			},
			{
				name:    "own item",
				req:     usecase.CreateTransactionRequest{BuyerID: sellerID, ItemID: itemID, Delivery: entity.DeliveryDetails{Method: entity.DeliveryCourier}},
				wantErr: errs.ErrInvalidRequest,
			},
			{
				name:    "amount differs from price",
				req:     usecase.CreateTransactionRequest{BuyerID: buyerID, ItemID: itemID, Amount: 9000, Delivery: entity.DeliveryDetails{Method: entity.DeliveryCourier}},
				wantErr: errs.ErrInvalidAmount,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				txn, err := f.service.CreateTransaction(ctx, tt.req)
				assert.Nil(t, txn)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestTransactionLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("should walk from pending to completed and pay the seller", func(t *testing.T) {
		f := newFixture(t)
		txn := f.delivered(t)
		assert.Equal(t, entity.StatusDelivered, txn.Status)
		assert.NotNil(t, txn.PaidAt)
		assert.NotNil(t, txn.ShippedAt)
		assert.NotNil(t, txn.DeliveredAt)

		f.payouts.EXPECT().ReleaseFunds(mock.Anything, sellerID, int64(9500), txn.ID+":seller").Return(nil).Once()

		completed, err := f.service.CompleteTransaction(ctx, txn.ID, buyerID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, completed.Status)
		assert.Equal(t, entity.ReleaseDone, completed.ReleaseState)
		assert.NotNil(t, completed.CompletedAt)

		payouts, err := f.service.ListPayouts(ctx, txn.ID, sellerID)
		require.NoError(t, err)
		require.Len(t, payouts, 2)
		assert.Equal(t, entity.PayoutToPlatform, payouts[0].Role)
		assert.Equal(t, int64(500), payouts[0].Amount)
		assert.Equal(t, entity.PayoutConfirmed, payouts[0].State)
		assert.Equal(t, entity.PayoutToSeller, payouts[1].Role)
		assert.Equal(t, entity.PayoutConfirmed, payouts[1].State)
	})

	t.Run("should let the payment system confirm payment", func(t *testing.T) {
		f := newFixture(t)
		txn := f.create(t)

		paid, err := f.service.ConfirmPayment(ctx, txn.ID, entity.SystemActor)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPaid, paid.Status)
	})

	t.Run("should reject the wrong actor without changing state", func(t *testing.T) {
		f := newFixture(t)
		txn := f.create(t)

		_, err := f.service.ConfirmPayment(ctx, txn.ID, sellerID)
		assert.True(t, errs.IsUnauthorizedError(err))
		var authErr *errs.AuthorizationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "buyer", authErr.RequiredRole)

		_, err = f.service.ConfirmPayment(ctx, txn.ID, "stranger")
		assert.True(t, errs.IsUnauthorizedError(err))
		assert.Equal(t, entity.StatusPending, f.stored(t, txn.ID).Status)
	})

	t.Run("should reject out of order transitions", func(t *testing.T) {
		f := newFixture(t)
		txn := f.create(t)

		_, err := f.service.MarkShipped(ctx, txn.ID, sellerID)
		assert.True(t, errs.IsInvalidTransitionError(err))
		var transitionErr *errs.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, string(entity.StatusPending), transitionErr.Status)

		_, err = f.service.CompleteTransaction(ctx, txn.ID, buyerID)
		assert.True(t, errs.IsInvalidTransitionError(err))
		assert.Equal(t, entity.StatusPending, f.stored(t, txn.ID).Status)
	})

	t.Run("should cancel only while pending", func(t *testing.T) {
		f := newFixture(t)
		pending := f.create(t)
		cancelled, err := f.service.CancelTransaction(ctx, pending.ID, sellerID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.CancelledAt)

		paid := f.create(t)
		_, err = f.service.ConfirmPayment(ctx, paid.ID, buyerID)
		require.NoError(t, err)
		_, err = f.service.CancelTransaction(ctx, paid.ID, buyerID)
		assert.True(t, errs.IsInvalidTransitionError(err))
	})

	t.Run("should keep terminal transactions immutable", func(t *testing.T) {
		f := newFixture(t)
		txn := f.delivered(t)
		f.payouts.EXPECT().ReleaseFunds(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		_, err := f.service.CompleteTransaction(ctx, txn.ID, buyerID)
		require.NoError(t, err)

		_, err = f.service.CompleteTransaction(ctx, txn.ID, buyerID)
		assert.True(t, errs.IsInvalidTransitionError(err))
		_, err = f.service.CancelTransaction(ctx, txn.ID, buyerID)
		assert.True(t, errs.IsInvalidTransitionError(err))
		_, err = f.service.MarkDelivered(ctx, txn.ID, buyerID)
		assert.True(t, errs.IsInvalidTransitionError(err))
		assert.Equal(t, entity.StatusCompleted, f.stored(t, txn.ID).Status)
	})

	t.Run("should refuse completion of a disputed transaction", func(t *testing.T) {
		f := newFixture(t)
		txn := f.delivered(t)

		repo := f.uow.GetTransactionRepository(ctx)
		locked := f.stored(t, txn.ID)
		require.NoError(t, locked.MarkDisputed(f.service.timeProvider))
		require.NoError(t, repo.Update(ctx, locked))

		_, err := f.service.CompleteTransaction(ctx, txn.ID, buyerID)
		assert.True(t, errs.IsInvalidTransitionError(err))
		_, err = f.service.CompleteTransaction(ctx, txn.ID, entity.SystemActor)
		assert.True(t, errs.IsInvalidTransitionError(err))
		assert.Equal(t, entity.StatusDisputed, f.stored(t, txn.ID).Status)
	})

	t.Run("should return not found for unknown transactions", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.ConfirmPayment(ctx, "missing", buyerID)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		_, err = f.service.ConfirmPayment(ctx, "", buyerID)
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})
}

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	txn := f.create(t)

	for _, user := range []string{buyerID, sellerID, adminID, entity.SystemActor} {
		got, err := f.service.GetTransaction(ctx, txn.ID, user)
		require.NoError(t, err, user)
		assert.Equal(t, txn.ID, got.ID)
	}

	_, err := f.service.GetTransaction(ctx, txn.ID, "stranger")
	assert.True(t, errs.IsUnauthorizedError(err))
}

func TestCompleteTransactionPayoutFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep delivered and retry with the same reference after decline", func(t *testing.T) {
		f := newFixture(t)
		txn := f.delivered(t)
		reference := txn.ID + ":seller"

		f.payouts.EXPECT().ReleaseFunds(mock.Anything, sellerID, int64(9500), reference).
			Return(external.ErrPayoutDeclined).Once()

		failed, err := f.service.CompleteTransaction(ctx, txn.ID, buyerID)
		assert.True(t, errs.IsPayoutFailureError(err))
		var payoutErr *errs.PayoutError
		require.ErrorAs(t, err, &payoutErr)
		assert.Equal(t, []string{reference}, payoutErr.References)
		require.NotNil(t, failed)
		assert.Equal(t, entity.StatusDelivered, failed.Status)
		assert.Equal(t, entity.ReleaseFailed, failed.ReleaseState)

		stored, err := f.uow.GetPayoutRepository(ctx).GetByReference(ctx, reference)
		require.NoError(t, err)
		assert.Equal(t, entity.PayoutFailed, stored.State)

		f.payouts.EXPECT().ReleaseFunds(mock.Anything, sellerID, int64(9500), reference).Return(nil).Once()
		completed, err := f.service.RetryRelease(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, completed.Status)
		assert.Equal(t, entity.ReleaseDone, completed.ReleaseState)

		payouts, err := f.uow.GetPayoutRepository(ctx).ListByOwner(ctx, txn.ID)
		require.NoError(t, err)
		assert.Len(t, payouts, 2)
	})

	t.Run("should record unknown outcome as attempted", func(t *testing.T) {
		f := newFixture(t)
		txn := f.delivered(t)
		reference := txn.ID + ":seller"

		f.payouts.EXPECT().ReleaseFunds(mock.Anything, sellerID, int64(9500), reference).
			Return(errors.New("connection reset")).Once()

		_, err := f.service.CompleteTransaction(ctx, txn.ID, buyerID)
		assert.True(t, errs.IsPayoutFailureError(err))

		stored, err := f.uow.GetPayoutRepository(ctx).GetByReference(ctx, reference)
		require.NoError(t, err)
		assert.Equal(t, entity.PayoutAttempted, stored.State)
		assert.Equal(t, 1, stored.Attempts)

		f.payouts.EXPECT().ReleaseFunds(mock.Anything, sellerID, int64(9500), reference).Return(nil).Once()
		completed, err := f.service.RetryRelease(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, completed.Status)
	})

	t.Run("should refuse to retry a release that never started", func(t *testing.T) {
		f := newFixture(t)
		txn := f.delivered(t)

		_, err := f.service.RetryRelease(ctx, txn.ID)
		assert.True(t, errs.IsInvalidTransitionError(err))
	})
}

func TestConcurrentCompletion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	txn := f.delivered(t)

	f.payouts.EXPECT().ReleaseFunds(mock.Anything, sellerID, int64(9500), txn.ID+":seller").
		RunAndReturn(func(context.Context, string, int64, string) error {
			time.Sleep(10 * time.Millisecond)
			return nil
		}).Once()

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(actor string) {
			defer wg.Done()
			_, err := f.service.CompleteTransaction(ctx, txn.ID, actor)
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.True(t, errs.IsConflictError(err) || errs.IsInvalidTransitionError(err), err.Error())
		}([]string{buyerID, entity.SystemActor}[i%2])
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, entity.StatusCompleted, f.stored(t, txn.ID).Status)
	payouts, err := f.uow.GetPayoutRepository(ctx).ListByOwner(ctx, txn.ID)
	require.NoError(t, err)
	assert.Len(t, payouts, 2)
}
