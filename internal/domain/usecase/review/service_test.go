package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/repository/memory"
	coremocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/core"
	externalmocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/external"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, uow *memory.UnitOfWork, mockTime *coremocks.MockTimeProvider, id, itemID string, status entity.TransactionStatus) {
	t.Helper()
	txn, err := entity.NewTransaction(id, "buyer-1", "seller-1", itemID, 10000, 500,
		entity.DeliveryDetails{Method: entity.DeliveryFaceToFace}, mockTime)
	require.NoError(t, err)
	txn.Status = status
	require.NoError(t, uow.GetTransactionRepository(context.Background()).Create(context.Background(), txn))
}

func TestReviewService(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	businessID := "bakery-7"

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Named("review").Return(mockLogger).Once()

	uow := memory.NewUnitOfWork(memory.NewStore(mockTime))
	catalog := memory.NewItemCatalog(
		entity.Item{ID: "bread", SellerID: "seller-1", Price: 10000, BusinessID: &businessID},
		entity.Item{ID: "chair", SellerID: "seller-1", Price: 10000},
	)
	seed(t, uow, mockTime, "tx-done", "bread", entity.StatusCompleted)
	seed(t, uow, mockTime, "tx-open", "bread", entity.StatusDelivered)
	seed(t, uow, mockTime, "tx-private", "chair", entity.StatusCompleted)

	service := NewReviewService(uow, catalog, mockLogger)

	t.Run("should allow the buyer of a completed business purchase", func(t *testing.T) {
		ok, err := service.CanReview(ctx, "tx-done", "buyer-1")
		require.NoError(t, err)
		assert.True(t, ok)

		eligibility, err := service.CheckEligibility(ctx, "tx-done", "buyer-1")
		require.NoError(t, err)
		assert.True(t, eligibility.Eligible)
		assert.Equal(t, businessID, eligibility.BusinessID)
	})

	t.Run("should refuse unfinished or private purchases", func(t *testing.T) {
		ok, err := service.CanReview(ctx, "tx-open", "buyer-1")
		require.NoError(t, err)
		assert.False(t, ok)

		eligibility, err := service.CheckEligibility(ctx, "tx-private", "buyer-1")
		require.NoError(t, err)
		assert.False(t, eligibility.Eligible)
		assert.Equal(t, ReasonNoBusiness, eligibility.Reason)

		eligibility, err = service.CheckEligibility(ctx, "tx-open", "buyer-1")
		require.NoError(t, err)
		assert.Equal(t, ReasonNotCompleted, eligibility.Reason)
	})

	t.Run("should only let the buyer review", func(t *testing.T) {
		for _, caller := range []string{"seller-1", "stranger", ""} {
			ok, err := service.CanReview(ctx, "tx-done", caller)
			require.NoError(t, err)
			assert.False(t, ok, caller)
		}

		eligibility, err := service.CheckEligibility(ctx, "tx-done", "seller-1")
		require.NoError(t, err)
		assert.False(t, eligibility.Eligible)
		assert.Equal(t, ReasonNotBuyer, eligibility.Reason)

		_, err = service.CheckEligibility(ctx, "tx-done", "stranger")
		assert.True(t, errs.IsUnauthorizedError(err))
	})

	t.Run("should fail for unknown transactions", func(t *testing.T) {
		_, err := service.CanReview(ctx, "missing", "buyer-1")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		_, err = service.CanReview(ctx, "", "buyer-1")
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})

	t.Run("should surface catalog failures", func(t *testing.T) {
		failing := externalmocks.NewMockItemCatalog(t)
		failing.EXPECT().GetItem(mock.Anything, "bread").Return(nil, errors.New("catalog down")).Once()
		mockLogger.EXPECT().Named("review").Return(mockLogger).Once()
		mockLogger.EXPECT().Warn("Catalog lookup failed during review check", mock.Anything).Once()

		_, err := NewReviewService(uow, failing, mockLogger).CanReview(ctx, "tx-done", "buyer-1")
		assert.EqualError(t, err, "catalog down")
	})
}
