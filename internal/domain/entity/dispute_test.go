package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispute(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newDispute := func(t *testing.T) *Dispute {
		tx := newTestTransaction(t, mockTime)
		tx.Status = StatusShipped
		d, err := NewDispute("d-1", tx, "buyer-1", PartyBuyer, ReasonItemNotReceived, "never arrived", mockTime)
		require.NoError(t, err)
		return d
	}

	t.Run("should open with previous transaction status", func(t *testing.T) {
		d := newDispute(t)
		assert.Equal(t, DisputeOpen, d.Status)
		assert.Equal(t, StatusShipped, d.PreviousStatus)
		assert.Nil(t, d.RefundAmount)
		assert.Nil(t, d.SellerAmount)
		assert.Equal(t, SettlementNone, d.Settlement)
	})

	t.Run("should reject unknown reason", func(t *testing.T) {
		tx := newTestTransaction(t, mockTime)
		_, err := NewDispute("d-1", tx, "buyer-1", PartyBuyer, "vibes", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidReason)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should accept every listed reason", func(t *testing.T) {
		for _, reason := range DisputeReasons() {
			assert.True(t, reason.IsValid(), string(reason))
			tx := newTestTransaction(t, mockTime)
			d, err := NewDispute("d-1", tx, "buyer-1", PartyBuyer, reason, "", mockTime)
			require.NoError(t, err, string(reason))
			assert.Equal(t, reason, d.Reason)
		}
		assert.Contains(t, DisputeReasons(), ReasonDeliveryIssue)
		assert.Contains(t, DisputeReasons(), ReasonSellerUnresponsive)
		assert.False(t, DisputeReason("buyer_unresponsive").IsValid())
	})

	t.Run("should overwrite evidence per party", func(t *testing.T) {
		d := newDispute(t)
		require.NoError(t, d.SubmitEvidence(PartyBuyer, EvidenceBundle{Description: "first"}, mockTime))
		require.NoError(t, d.SubmitEvidence(PartyBuyer, EvidenceBundle{Description: "second", Photos: []string{"p.jpg"}}, mockTime))
		require.NoError(t, d.SubmitEvidence(PartySeller, EvidenceBundle{Description: "handed over"}, mockTime))

		assert.Equal(t, "second", d.BuyerEvidence.Description)
		assert.Equal(t, []string{"p.jpg"}, d.BuyerEvidence.Photos)
		assert.Equal(t, fixedTime, d.BuyerEvidence.SubmittedAt)
		assert.Equal(t, "handed over", d.SellerEvidence.Description)
	})

	t.Run("should validate evidence bundle", func(t *testing.T) {
		d := newDispute(t)
		photos := make([]string, MaxEvidencePhotos+1)
		for i := range photos {
			photos[i] = "p.jpg"
		}
		assert.ErrorIs(t, d.SubmitEvidence(PartyBuyer, EvidenceBundle{Description: "x", Photos: photos}, mockTime), errs.ErrInvalidRequest)
		assert.ErrorIs(t, d.SubmitEvidence(PartyBuyer, EvidenceBundle{Description: strings.Repeat("x", MaxEvidenceTextLength+1)}, mockTime), errs.ErrInvalidRequest)
	})

	t.Run("should accept bundles without a description", func(t *testing.T) {
		d := newDispute(t)
		require.NoError(t, d.SubmitEvidence(PartyBuyer, EvidenceBundle{}, mockTime))
		require.NotNil(t, d.BuyerEvidence)
		assert.Empty(t, d.BuyerEvidence.Description)

		require.NoError(t, d.SubmitEvidence(PartySeller, EvidenceBundle{Photos: []string{"receipt.jpg"}}, mockTime))
		assert.Empty(t, d.SellerEvidence.Description)
		assert.Equal(t, []string{"receipt.jpg"}, d.SellerEvidence.Photos)

		assert.ErrorIs(t, d.SubmitEvidence(PartyBuyer, EvidenceBundle{Photos: []string{"  "}}, mockTime), errs.ErrInvalidRequest)
	})

	t.Run("should move open to under review once", func(t *testing.T) {
		d := newDispute(t)
		require.NoError(t, d.BeginReview(mockTime))
		assert.Equal(t, DisputeUnderReview, d.Status)
		assert.True(t, errs.IsInvalidTransitionError(d.BeginReview(mockTime)))
	})

	t.Run("should resolve and then reject further changes", func(t *testing.T) {
		d := newDispute(t)
		require.NoError(t, d.Resolve("admin-1", OutcomeCancel, "refund most", 7000, 3000, mockTime))

		assert.Equal(t, DisputeResolved, d.Status)
		assert.Equal(t, int64(7000), *d.RefundAmount)
		assert.Equal(t, int64(3000), *d.SellerAmount)
		assert.Equal(t, SettlementPending, d.Settlement)
		assert.True(t, d.NeedsSettlement())

		assert.True(t, errs.IsInvalidTransitionError(d.Resolve("admin-1", OutcomeCancel, "", 10000, 0, mockTime)))
		assert.True(t, errs.IsInvalidTransitionError(d.Close("admin-1", "", mockTime)))
		assert.True(t, errs.IsInvalidTransitionError(d.SubmitEvidence(PartyBuyer, EvidenceBundle{Description: "late"}, mockTime)))
	})

	t.Run("should close with a note and no resolution", func(t *testing.T) {
		d := newDispute(t)
		require.NoError(t, d.BeginReview(mockTime))
		require.NoError(t, d.Close("admin-1", "withdrawn by buyer", mockTime))

		assert.Equal(t, DisputeClosed, d.Status)
		assert.Equal(t, "withdrawn by buyer", d.ClosingNote)
		assert.Empty(t, d.Resolution)
		assert.Empty(t, d.Outcome)
		assert.Nil(t, d.RefundAmount)
		assert.Nil(t, d.SellerAmount)
		assert.Equal(t, SettlementNone, d.Settlement)
		require.NotNil(t, d.ClosedAt)
		assert.Equal(t, fixedTime, *d.ClosedAt)
		assert.False(t, d.NeedsSettlement())

		assert.ErrorIs(t, newDispute(t).Close("admin-1", strings.Repeat("x", MaxResolutionTextLength+1), mockTime), errs.ErrInvalidRequest)
	})

	t.Run("should allow admin notes at any status", func(t *testing.T) {
		d := newDispute(t)
		require.NoError(t, d.Close("admin-1", "withdrawn", mockTime))
		require.NoError(t, d.SetAdminNotes("called both parties", mockTime))
		assert.Equal(t, "called both parties", d.AdminNotes)
		assert.Equal(t, DisputeClosed, d.Status)
	})

	t.Run("should deep copy on clone", func(t *testing.T) {
		d := newDispute(t)
		require.NoError(t, d.SubmitEvidence(PartyBuyer, EvidenceBundle{Description: "x", Photos: []string{"a"}}, mockTime))
		c := d.Clone()
		c.BuyerEvidence.Photos[0] = "b"
		assert.Equal(t, "a", d.BuyerEvidence.Photos[0])
	})
}
