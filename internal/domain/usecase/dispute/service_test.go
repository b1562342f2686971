package dispute

import (
	"context"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDispute(t *testing.T) {
	ctx := context.Background()

	t.Run("should freeze the transaction", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)

		d := f.open(t, txn, buyerID)
		assert.Equal(t, entity.DisputeOpen, d.Status)
		assert.Equal(t, entity.PartyBuyer, d.OpenedByParty)
		assert.Equal(t, entity.StatusPaid, d.PreviousStatus)
		assert.Equal(t, entity.StatusDisputed, f.transaction(t, txn.ID).Status)

		_, err := f.transactions.MarkShipped(ctx, txn.ID, sellerID)
		assert.True(t, errs.IsInvalidTransitionError(err))
	})

	t.Run("should allow the seller to open", func(t *testing.T) {
		f := newFixture(t)
		d := f.open(t, f.paid(t), sellerID)
		assert.Equal(t, entity.PartySeller, d.OpenedByParty)
	})

	t.Run("should reject outsiders and bad input", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)

		_, err := f.disputes.OpenDispute(ctx, usecase.OpenDisputeRequest{
			TransactionID: txn.ID, ActingUserID: "stranger", Reason: entity.ReasonOther,
		})
		assert.True(t, errs.IsUnauthorizedError(err))

		_, err = f.disputes.OpenDispute(ctx, usecase.OpenDisputeRequest{
			TransactionID: txn.ID, ActingUserID: buyerID, Reason: "bored",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidReason)

		_, err = f.disputes.OpenDispute(ctx, usecase.OpenDisputeRequest{
			TransactionID: "missing", ActingUserID: buyerID, Reason: entity.ReasonOther,
		})
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Equal(t, entity.StatusPaid, f.transaction(t, txn.ID).Status)
	})

	t.Run("should reject terminal transactions", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)
		pending, err := f.transactions.CreateTransaction(ctx, usecase.CreateTransactionRequest{
			BuyerID: buyerID, ItemID: "item-1", Delivery: entity.DeliveryDetails{Method: entity.DeliveryCourier},
		})
		require.NoError(t, err)
		_, err = f.transactions.CancelTransaction(ctx, pending.ID, buyerID)
		require.NoError(t, err)

		_, err = f.disputes.OpenDispute(ctx, usecase.OpenDisputeRequest{
			TransactionID: pending.ID, ActingUserID: buyerID, Reason: entity.ReasonOther,
		})
		assert.True(t, errs.IsInvalidTransitionError(err))
		assert.Equal(t, entity.StatusPaid, f.transaction(t, txn.ID).Status)
	})

	t.Run("should accept every dispute reason", func(t *testing.T) {
		for _, reason := range entity.DisputeReasons() {
			f := newFixture(t)
			txn := f.paid(t)

			d, err := f.disputes.OpenDispute(ctx, usecase.OpenDisputeRequest{
				TransactionID: txn.ID, ActingUserID: buyerID, Reason: reason,
			})
			require.NoError(t, err, string(reason))
			assert.Equal(t, reason, d.Reason)
		}
	})

	t.Run("should allow only one active dispute", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)
		f.open(t, txn, buyerID)

		_, err := f.disputes.OpenDispute(ctx, usecase.OpenDisputeRequest{
			TransactionID: txn.ID, ActingUserID: sellerID, Reason: entity.ReasonDeliveryIssue,
		})
		assert.True(t, errs.IsConflictError(err))
	})
}

func TestDisputeReview(t *testing.T) {
	ctx := context.Background()

	t.Run("should store evidence per party", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)
		d := f.open(t, txn, buyerID)

		d, err := f.disputes.SubmitEvidence(ctx, d.ID, buyerID, entity.EvidenceBundle{
			Description: "tracking shows no delivery",
			Photos:      []string{"https://img.example/1.jpg"},
		})
		require.NoError(t, err)
		require.NotNil(t, d.BuyerEvidence)
		assert.Nil(t, d.SellerEvidence)

		d, err = f.disputes.SubmitEvidence(ctx, d.ID, sellerID, entity.EvidenceBundle{Description: "handed to courier"})
		require.NoError(t, err)
		require.NotNil(t, d.SellerEvidence)
		assert.Equal(t, "handed to courier", d.SellerEvidence.Description)

		_, err = f.disputes.SubmitEvidence(ctx, d.ID, "stranger", entity.EvidenceBundle{Description: "hi"})
		assert.True(t, errs.IsUnauthorizedError(err))

		photos := make([]string, entity.MaxEvidencePhotos+1)
		for i := range photos {
			photos[i] = "p.jpg"
		}
		_, err = f.disputes.SubmitEvidence(ctx, d.ID, buyerID, entity.EvidenceBundle{Description: "more", Photos: photos})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should accept a bundle with only photos", func(t *testing.T) {
		f := newFixture(t)
		d := f.open(t, f.paid(t), buyerID)

		d, err := f.disputes.SubmitEvidence(ctx, d.ID, buyerID, entity.EvidenceBundle{Photos: []string{"p1.jpg"}})
		require.NoError(t, err)
		require.NotNil(t, d.BuyerEvidence)
		assert.Empty(t, d.BuyerEvidence.Description)
		assert.Equal(t, []string{"p1.jpg"}, d.BuyerEvidence.Photos)
	})

	t.Run("should let only admins review", func(t *testing.T) {
		f := newFixture(t)
		d := f.open(t, f.paid(t), buyerID)

		_, err := f.disputes.BeginReview(ctx, d.ID, buyerID)
		assert.True(t, errs.IsUnauthorizedError(err))

		d, err = f.disputes.BeginReview(ctx, d.ID, adminID)
		require.NoError(t, err)
		assert.Equal(t, entity.DisputeUnderReview, d.Status)
		assert.NotNil(t, d.ReviewStartedAt)

		_, err = f.disputes.BeginReview(ctx, d.ID, adminID)
		assert.True(t, errs.IsInvalidTransitionError(err))

		d, err = f.disputes.AddAdminNotes(ctx, d.ID, adminID, "called both parties")
		require.NoError(t, err)
		assert.Equal(t, "called both parties", d.AdminNotes)

		_, err = f.disputes.AddAdminNotes(ctx, d.ID, sellerID, "let me in")
		assert.True(t, errs.IsUnauthorizedError(err))
		_, err = f.disputes.AddAdminNotes(ctx, d.ID, adminID, strings.Repeat("x", entity.MaxAdminNotesLength+1))
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should show disputes to parties and admins only", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)
		d := f.open(t, txn, buyerID)

		for _, user := range []string{buyerID, sellerID, adminID} {
			got, err := f.disputes.GetDispute(ctx, d.ID, user)
			require.NoError(t, err, user)
			assert.Equal(t, d.ID, got.ID)
		}
		_, err := f.disputes.GetDispute(ctx, d.ID, "stranger")
		assert.True(t, errs.IsUnauthorizedError(err))

		latest, err := f.disputes.GetDisputeForTransaction(ctx, txn.ID, sellerID)
		require.NoError(t, err)
		assert.Equal(t, d.ID, latest.ID)

		_, err = f.disputes.GetDispute(ctx, "missing", adminID)
		assert.ErrorIs(t, err, errs.ErrDisputeNotFound)
	})
}

func TestCloseDispute(t *testing.T) {
	ctx := context.Background()

	t.Run("should hand the transaction back to its previous status", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)
		d := f.open(t, txn, buyerID)

		_, err := f.disputes.CloseDispute(ctx, d.ID, buyerID, "withdrawn")
		assert.True(t, errs.IsUnauthorizedError(err))
		assert.Equal(t, entity.StatusDisputed, f.transaction(t, txn.ID).Status)

		closed, err := f.disputes.CloseDispute(ctx, d.ID, adminID, "withdrawn by buyer")
		require.NoError(t, err)
		assert.Equal(t, entity.DisputeClosed, closed.Status)
		assert.NotNil(t, closed.ClosedAt)
		assert.Equal(t, "withdrawn by buyer", closed.ClosingNote)
		assert.Empty(t, closed.Resolution)
		assert.Nil(t, closed.RefundAmount)
		assert.Nil(t, closed.SellerAmount)
		assert.Equal(t, entity.StatusPaid, f.transaction(t, txn.ID).Status)

		_, err = f.disputes.ResolveDispute(ctx, usecase.ResolveDisputeRequest{
			DisputeID: d.ID, AdminID: adminID, RefundAmount: 10000,
		})
		assert.True(t, errs.IsInvalidTransitionError(err))
		_, err = f.disputes.CloseDispute(ctx, d.ID, adminID, "")
		assert.True(t, errs.IsInvalidTransitionError(err))
	})

	t.Run("should let the lifecycle continue after close", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)
		d := f.open(t, txn, buyerID)
		_, err := f.disputes.CloseDispute(ctx, d.ID, adminID, "")
		require.NoError(t, err)

		shipped, err := f.transactions.MarkShipped(ctx, txn.ID, sellerID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusShipped, shipped.Status)
	})

	t.Run("should allow a new dispute after close", func(t *testing.T) {
		f := newFixture(t)
		txn := f.paid(t)
		first := f.open(t, txn, buyerID)
		_, err := f.disputes.CloseDispute(ctx, first.ID, adminID, "")
		require.NoError(t, err)

		second, err := f.disputes.OpenDispute(ctx, usecase.OpenDisputeRequest{
			TransactionID: txn.ID, ActingUserID: sellerID, Reason: entity.ReasonPaymentIssue,
		})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, entity.StatusPaid, second.PreviousStatus)
		assert.Equal(t, entity.StatusDisputed, f.transaction(t, txn.ID).Status)

		active, err := f.uow.GetDisputeRepository(ctx).GetActiveByTransactionID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, active.ID)
	})

	t.Run("should let a pending transaction be cancelled after close", func(t *testing.T) {
		f := newFixture(t)
		pending, err := f.transactions.CreateTransaction(ctx, usecase.CreateTransactionRequest{
			BuyerID: buyerID, ItemID: "item-1", Delivery: entity.DeliveryDetails{Method: entity.DeliveryCourier},
		})
		require.NoError(t, err)
		d := f.open(t, pending, sellerID)
		_, err = f.disputes.CloseDispute(ctx, d.ID, adminID, "")
		require.NoError(t, err)

		cancelled, err := f.transactions.CancelTransaction(ctx, pending.ID, buyerID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, cancelled.Status)
	})
}
