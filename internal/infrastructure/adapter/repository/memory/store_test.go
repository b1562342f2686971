package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*UnitOfWork, *coremocks.MockTimeProvider, time.Time) {
	t.Helper()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	return NewUnitOfWork(NewStore(mockTime)), mockTime, fixedTime
}

func seedTransaction(t *testing.T, uow *UnitOfWork, mockTime *coremocks.MockTimeProvider, id string) *entity.Transaction {
	t.Helper()
	txn, err := entity.NewTransaction(id, "buyer-1", "seller-1", "item-1", 10000, 500,
		entity.DeliveryDetails{Method: entity.DeliveryFaceToFace}, mockTime)
	require.NoError(t, err)
	require.NoError(t, uow.GetTransactionRepository(context.Background()).Create(context.Background(), txn))
	return txn
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("should commit staged writes", func(t *testing.T) {
		uow, mockTime, _ := setupStore(t)
		txn := seedTransaction(t, uow, mockTime, "tx-1")

		err := uow.Do(ctx, func(txCtx context.Context) error {
			repo := uow.GetTransactionRepository(txCtx)
			loaded, err := repo.GetForUpdate(txCtx, txn.ID)
			if err != nil {
				return err
			}
			if err := loaded.MarkPaid(mockTime); err != nil {
				return err
			}
			return repo.Update(txCtx, loaded)
		})
		require.NoError(t, err)

		stored, err := uow.GetTransactionRepository(ctx).GetByID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPaid, stored.Status)
		assert.Equal(t, int64(2), stored.Version)
	})

	t.Run("should discard staged writes on error", func(t *testing.T) {
		uow, mockTime, _ := setupStore(t)
		txn := seedTransaction(t, uow, mockTime, "tx-1")
		boom := errors.New("boom")

		err := uow.Do(ctx, func(txCtx context.Context) error {
			repo := uow.GetTransactionRepository(txCtx)
			loaded, _ := repo.GetForUpdate(txCtx, txn.ID)
			_ = loaded.MarkPaid(mockTime)
			if err := repo.Update(txCtx, loaded); err != nil {
				return err
			}
			staged, _ := repo.GetByID(txCtx, txn.ID)
			assert.Equal(t, entity.StatusPaid, staged.Status)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		stored, err := uow.GetTransactionRepository(ctx).GetByID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, stored.Status)
	})

	t.Run("should reject stale version on update", func(t *testing.T) {
		uow, mockTime, _ := setupStore(t)
		txn := seedTransaction(t, uow, mockTime, "tx-1")
		repo := uow.GetTransactionRepository(ctx)

		first, _ := repo.GetByID(ctx, txn.ID)
		second, _ := repo.GetByID(ctx, txn.ID)
		require.NoError(t, first.MarkPaid(mockTime))
		require.NoError(t, repo.Update(ctx, first))

		require.NoError(t, second.Cancel(mockTime))
		err := repo.Update(ctx, second)
		assert.True(t, errs.IsConflictError(err))
	})

	t.Run("should fail commit when record moved on", func(t *testing.T) {
		uow, mockTime, _ := setupStore(t)
		txn := seedTransaction(t, uow, mockTime, "tx-1")

		err := uow.Do(ctx, func(txCtx context.Context) error {
			repo := uow.GetTransactionRepository(txCtx)
			loaded, _ := repo.GetForUpdate(txCtx, txn.ID)
			_ = loaded.MarkPaid(mockTime)
			if err := repo.Update(txCtx, loaded); err != nil {
				return err
			}

			outside, _ := uow.GetTransactionRepository(ctx).GetByID(ctx, txn.ID)
			_ = outside.Cancel(mockTime)
			return uow.GetTransactionRepository(ctx).Update(ctx, outside)
		})
		assert.True(t, errs.IsConflictError(err))

		stored, _ := uow.GetTransactionRepository(ctx).GetByID(ctx, txn.ID)
		assert.Equal(t, entity.StatusCancelled, stored.Status)
	})

	t.Run("should return not found for unknown ids", func(t *testing.T) {
		uow, _, _ := setupStore(t)

		_, err := uow.GetTransactionRepository(ctx).GetByID(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		_, err = uow.GetDisputeRepository(ctx).GetByID(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrDisputeNotFound)
		_, err = uow.GetPayoutRepository(ctx).GetByReference(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrPayoutNotFound)
	})
}

func TestDisputeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should allow one active dispute per transaction", func(t *testing.T) {
		uow, mockTime, _ := setupStore(t)
		txn := seedTransaction(t, uow, mockTime, "tx-1")
		repo := uow.GetDisputeRepository(ctx)

		first, err := entity.NewDispute("d-1", txn, txn.BuyerID, entity.PartyBuyer, entity.ReasonItemNotReceived, "", mockTime)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))

		second, err := entity.NewDispute("d-2", txn, txn.SellerID, entity.PartySeller, entity.ReasonOther, "", mockTime)
		require.NoError(t, err)
		assert.True(t, errs.IsConflictError(repo.Create(ctx, second)))

		active, err := repo.GetActiveByTransactionID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, "d-1", active.ID)
	})

	t.Run("should reject concurrent staged disputes at commit", func(t *testing.T) {
		uow, mockTime, _ := setupStore(t)
		txn := seedTransaction(t, uow, mockTime, "tx-1")

		err := uow.Do(ctx, func(txCtx context.Context) error {
			d, _ := entity.NewDispute("d-1", txn, txn.BuyerID, entity.PartyBuyer, entity.ReasonItemDamaged, "", mockTime)
			if err := uow.GetDisputeRepository(txCtx).Create(txCtx, d); err != nil {
				return err
			}
			other, _ := entity.NewDispute("d-2", txn, txn.SellerID, entity.PartySeller, entity.ReasonOther, "", mockTime)
			return uow.GetDisputeRepository(ctx).Create(ctx, other)
		})
		assert.True(t, errs.IsConflictError(err))

		_, err = uow.GetDisputeRepository(ctx).GetByID(ctx, "d-1")
		assert.ErrorIs(t, err, errs.ErrDisputeNotFound)
	})

	t.Run("should list unsettled resolved disputes", func(t *testing.T) {
		uow, mockTime, fixedTime := setupStore(t)
		txn := seedTransaction(t, uow, mockTime, "tx-1")
		repo := uow.GetDisputeRepository(ctx)

		d, _ := entity.NewDispute("d-1", txn, txn.BuyerID, entity.PartyBuyer, entity.ReasonItemDamaged, "", mockTime)
		require.NoError(t, repo.Create(ctx, d))
		require.NoError(t, d.Resolve("admin-1", entity.OutcomeCancel, "refund", 10000, 0, mockTime))
		require.NoError(t, repo.Update(ctx, d))

		list, err := repo.ListUnsettled(ctx, fixedTime, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "d-1", list[0].ID)

		latest, err := repo.GetLatestByTransactionID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DisputeResolved, latest.Status)
	})
}

func TestPayoutRepository(t *testing.T) {
	ctx := context.Background()
	uow, mockTime, _ := setupStore(t)
	repo := uow.GetPayoutRepository(ctx)

	seller, err := entity.NewPayout("tx-1", "tx-1", entity.PayoutToSeller, "seller-1", 9500, mockTime)
	require.NoError(t, err)
	platform, err := entity.NewPayout("tx-1", "tx-1", entity.PayoutToPlatform, entity.SystemActor, 500, mockTime)
	require.NoError(t, err)

	created, err := repo.CreateIfAbsent(ctx, seller)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.CreateIfAbsent(ctx, seller)
	require.NoError(t, err)
	assert.False(t, created)
	_, err = repo.CreateIfAbsent(ctx, platform)
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, "tx-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "tx-1:platform", list[0].Reference)
	assert.Equal(t, "tx-1:seller", list[1].Reference)
}

func TestReleaseLeaseRepository(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	now := fixedTime
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().RunAndReturn(func() time.Time { return now }).Maybe()
	leases := NewReleaseLeaseRepository(NewStore(mockTime))

	require.NoError(t, leases.AcquireLease(ctx, "tx-1", "worker-a", time.Minute))
	assert.ErrorIs(t, leases.AcquireLease(ctx, "tx-1", "worker-b", time.Minute), errs.ErrLeaseHeld)
	assert.ErrorIs(t, leases.AcquireLease(ctx, "tx-1", "worker-b", time.Minute), errs.ErrConflict)

	now = fixedTime.Add(2 * time.Minute)
	require.NoError(t, leases.AcquireLease(ctx, "tx-1", "worker-b", time.Minute))

	require.NoError(t, leases.ReleaseLease(ctx, "tx-1", "worker-a"))
	assert.ErrorIs(t, leases.AcquireLease(ctx, "tx-1", "worker-a", time.Minute), errs.ErrLeaseHeld)
	require.NoError(t, leases.ReleaseLease(ctx, "tx-1", "worker-b"))
	require.NoError(t, leases.AcquireLease(ctx, "tx-1", "worker-a", time.Minute))
}
