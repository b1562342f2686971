package handler

import (
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenDispute(t *testing.T) {
	t.Run("opens a dispute for the acting party", func(t *testing.T) {
		s := newTestServer(t)
		s.disputes.EXPECT().OpenDispute(mock.Anything, usecase.OpenDisputeRequest{
			TransactionID: "txn-1",
			ActingUserID:  buyerID,
			Reason:        entity.ReasonItemDamaged,
			Description:   "cracked frame",
		}).Return(sampleDispute(entity.DisputeOpen), nil)

		w := s.do(t, http.MethodPost, "/transactions/txn-1/disputes", buyerID, map[string]any{
			"reason":      "item_damaged",
			"description": "cracked frame",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[dto.DisputeResponse](t, w)
		assert.Equal(t, "dsp-1", resp.ID)
		assert.Equal(t, "open", resp.Status)
		assert.Equal(t, "DELIVERED", resp.PreviousStatus)
	})

	t.Run("accepts every dispute reason", func(t *testing.T) {
		for _, reason := range entity.DisputeReasons() {
			s := newTestServer(t)
			s.disputes.EXPECT().OpenDispute(mock.Anything, mock.MatchedBy(func(req usecase.OpenDisputeRequest) bool {
				return req.Reason == reason
			})).Return(sampleDispute(entity.DisputeOpen), nil)

			w := s.do(t, http.MethodPost, "/transactions/txn-1/disputes", buyerID, map[string]any{
				"reason": string(reason),
			})

			assert.Equal(t, http.StatusCreated, w.Code, string(reason))
		}
	})

	t.Run("rejects an unknown reason", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, http.MethodPost, "/transactions/txn-1/disputes", buyerID, map[string]any{
			"reason": "bored",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("second active dispute is a conflict", func(t *testing.T) {
		s := newTestServer(t)
		s.disputes.EXPECT().OpenDispute(mock.Anything, mock.Anything).
			Return(nil, errs.NewConflictError("txn-1", "an active dispute already exists"))

		w := s.do(t, http.MethodPost, "/transactions/txn-1/disputes", buyerID, map[string]any{
			"reason": "other",
		})

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, errs.CodeConflict, decode[dto.ErrorResponse](t, w).Code)
	})
}

func TestSubmitEvidence(t *testing.T) {
	s := newTestServer(t)
	updated := sampleDispute(entity.DisputeOpen)
	updated.BuyerEvidence = &entity.EvidenceBundle{Description: "photos attached", Photos: []string{"https://img/1.jpg"}}
	s.disputes.EXPECT().SubmitEvidence(mock.Anything, "dsp-1", buyerID, mock.MatchedBy(func(b entity.EvidenceBundle) bool {
		return b.Description == "photos attached" && len(b.Photos) == 1
	})).Return(updated, nil)

	w := s.do(t, http.MethodPut, "/disputes/dsp-1/evidence", buyerID, map[string]any{
		"description": "photos attached",
		"photos":      []string{"https://img/1.jpg"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.DisputeResponse](t, w)
	require.NotNil(t, resp.BuyerEvidence)
	assert.Equal(t, "photos attached", resp.BuyerEvidence.Description)
}

func TestSubmitEvidencePhotosOnly(t *testing.T) {
	s := newTestServer(t)
	s.disputes.EXPECT().SubmitEvidence(mock.Anything, "dsp-1", buyerID, mock.MatchedBy(func(b entity.EvidenceBundle) bool {
		return b.Description == "" && len(b.Photos) == 1
	})).Return(sampleDispute(entity.DisputeOpen), nil)

	w := s.do(t, http.MethodPut, "/disputes/dsp-1/evidence", buyerID, map[string]any{
		"photos": []string{"https://img/1.jpg"},
	})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAddAdminNotes(t *testing.T) {
	t.Run("replaces the notes", func(t *testing.T) {
		s := newTestServer(t)
		noted := sampleDispute(entity.DisputeUnderReview)
		noted.AdminNotes = "called both parties"
		s.disputes.EXPECT().AddAdminNotes(mock.Anything, "dsp-1", adminID, "called both parties").Return(noted, nil)

		w := s.do(t, http.MethodPut, "/disputes/dsp-1/notes", adminID, map[string]any{
			"notes": "called both parties",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "called both parties", decode[dto.DisputeResponse](t, w).AdminNotes)
	})

	t.Run("empty notes clear them", func(t *testing.T) {
		s := newTestServer(t)
		s.disputes.EXPECT().AddAdminNotes(mock.Anything, "dsp-1", adminID, "").
			Return(sampleDispute(entity.DisputeUnderReview), nil)

		w := s.do(t, http.MethodPut, "/disputes/dsp-1/notes", adminID, map[string]any{
			"notes": "",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[dto.DisputeResponse](t, w).AdminNotes)
	})
}

func TestCloseDispute(t *testing.T) {
	s := newTestServer(t)
	closed := sampleDispute(entity.DisputeClosed)
	closed.ClosingNote = "withdrawn by buyer"
	s.disputes.EXPECT().CloseDispute(mock.Anything, "dsp-1", adminID, "withdrawn by buyer").Return(closed, nil)

	w := s.do(t, http.MethodPost, "/disputes/dsp-1/close", adminID, map[string]any{
		"note": "withdrawn by buyer",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.DisputeResponse](t, w)
	assert.Equal(t, "closed", resp.Status)
	assert.Equal(t, "withdrawn by buyer", resp.ClosingNote)
	assert.Empty(t, resp.Resolution)
}

func TestResolveDispute(t *testing.T) {
	t.Run("passes the split through", func(t *testing.T) {
		s := newTestServer(t)
		resolved := sampleDispute(entity.DisputeResolved)
		resolved.Settlement = entity.SettlementDone
		s.disputes.EXPECT().ResolveDispute(mock.Anything, usecase.ResolveDisputeRequest{
			DisputeID:    "dsp-1",
			AdminID:      adminID,
			Resolution:   "split evenly",
			RefundAmount: 5000,
			SellerAmount: 5000,
		}).Return(resolved, nil)

		w := s.do(t, http.MethodPost, "/disputes/dsp-1/resolve", adminID, map[string]any{
			"resolution":   "split evenly",
			"refundAmount": 5000,
			"sellerAmount": 5000,
		})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.DisputeResponse](t, w)
		assert.Equal(t, "resolved", resp.Status)
		assert.Equal(t, "settled", resp.PayoutState)
	})

	t.Run("zero amounts are explicit values", func(t *testing.T) {
		s := newTestServer(t)
		s.disputes.EXPECT().ResolveDispute(mock.Anything, mock.MatchedBy(func(req usecase.ResolveDisputeRequest) bool {
			return req.RefundAmount == 10000 && req.SellerAmount == 0
		})).Return(sampleDispute(entity.DisputeResolved), nil)

		w := s.do(t, http.MethodPost, "/disputes/dsp-1/resolve", adminID, map[string]any{
			"resolution":   "full refund",
			"refundAmount": 10000,
			"sellerAmount": 0,
		})

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing amount is a bad request", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, http.MethodPost, "/disputes/dsp-1/resolve", adminID, map[string]any{
			"resolution":   "full refund",
			"refundAmount": 10000,
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("split that does not add up is 422", func(t *testing.T) {
		s := newTestServer(t)
		s.disputes.EXPECT().ResolveDispute(mock.Anything, mock.Anything).
			Return(nil, errs.NewSplitError("dsp-1", 10000, 4000, 4000))

		w := s.do(t, http.MethodPost, "/disputes/dsp-1/resolve", adminID, map[string]any{
			"resolution":   "split",
			"refundAmount": 4000,
			"sellerAmount": 4000,
		})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, errs.CodeInvalidSplit, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("payout failure returns the resolved dispute", func(t *testing.T) {
		s := newTestServer(t)
		resolved := sampleDispute(entity.DisputeResolved)
		resolved.Settlement = entity.SettlementPartial
		s.disputes.EXPECT().ResolveDispute(mock.Anything, mock.Anything).
			Return(resolved, errs.NewPayoutError("dsp-1", []string{"dsp-1:buyer"}, assert.AnError))

		w := s.do(t, http.MethodPost, "/disputes/dsp-1/resolve", adminID, map[string]any{
			"resolution":   "split",
			"refundAmount": 5000,
			"sellerAmount": 5000,
		})

		require.Equal(t, http.StatusBadGateway, w.Code)
		resp := decode[map[string]any](t, w)
		assert.Equal(t, "resolved", resp["status"])
		resource, ok := resp["resource"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "partial", resource["payoutState"])
	})
}

func TestRetryPayouts(t *testing.T) {
	s := newTestServer(t)
	settled := sampleDispute(entity.DisputeResolved)
	settled.Settlement = entity.SettlementDone
	s.disputes.EXPECT().GetDispute(mock.Anything, "dsp-1", adminID).Return(sampleDispute(entity.DisputeResolved), nil)
	s.disputes.EXPECT().RetryPayouts(mock.Anything, "dsp-1").Return(settled, nil)

	w := s.do(t, http.MethodPost, "/disputes/dsp-1/retry-payouts", adminID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "settled", decode[dto.DisputeResponse](t, w).PayoutState)
}

func TestGetDisputeNotFound(t *testing.T) {
	s := newTestServer(t)
	s.disputes.EXPECT().GetDispute(mock.Anything, "missing", buyerID).Return(nil, errs.ErrDisputeNotFound)

	w := s.do(t, http.MethodGet, "/disputes/missing", buyerID, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errs.CodeNotFound, decode[dto.ErrorResponse](t, w).Code)
}
