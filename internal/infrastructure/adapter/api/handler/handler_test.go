package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	buyerID = "buyer-1"
	adminID = "admin-1"
)

var fixedTime = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

type testServer struct {
	router       *gin.Engine
	transactions *usecasemocks.MockTransactionUseCase
	disputes     *usecasemocks.MockDisputeUseCase
	reviews      *usecasemocks.MockReviewUseCase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		router:       gin.New(),
		transactions: usecasemocks.NewMockTransactionUseCase(t),
		disputes:     usecasemocks.NewMockDisputeUseCase(t),
		reviews:      usecasemocks.NewMockReviewUseCase(t),
	}
	log := logger.NewNoopLogger()
	th := NewTransactionHandler(s.transactions, s.reviews, log)
	dh := NewDisputeHandler(s.disputes, log)

	txns := s.router.Group("/transactions", middleware.Actor())
	txns.POST("", th.CreateTransaction)
	txns.GET("/:id", th.GetTransaction)
	txns.GET("/:id/payouts", th.ListPayouts)
	txns.GET("/:id/review-eligibility", th.ReviewEligibility)
	txns.POST("/:id/complete", th.CompleteTransaction)
	txns.POST("/:id/ship", th.MarkShipped)
	txns.POST("/:id/retry-release", th.RetryRelease)
	txns.POST("/:id/disputes", dh.OpenDispute)

	disputes := s.router.Group("/disputes", middleware.Actor())
	disputes.GET("/:id", dh.GetDispute)
	disputes.PUT("/:id/evidence", dh.SubmitEvidence)
	disputes.POST("/:id/resolve", dh.ResolveDispute)
	disputes.POST("/:id/retry-payouts", dh.RetryPayouts)
	return s
}

func (s *testServer) do(t *testing.T, method, path, actor string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(middleware.ActorHeader, actor)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func sampleTransaction(status entity.TransactionStatus) *entity.Transaction {
	return &entity.Transaction{
		ID:           "txn-1",
		BuyerID:      buyerID,
		SellerID:     "seller-1",
		ItemID:       "item-1",
		Amount:       10000,
		Commission:   500,
		SellerAmount: 9500,
		Status:       status,
		ReleaseState: entity.ReleaseNone,
		Delivery:     entity.DeliveryDetails{Method: entity.DeliveryFaceToFace},
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
		Version:      1,
	}
}

func sampleDispute(status entity.DisputeStatus) *entity.Dispute {
	return &entity.Dispute{
		ID:             "dsp-1",
		TransactionID:  "txn-1",
		OpenedBy:       buyerID,
		OpenedByParty:  entity.PartyBuyer,
		Reason:         entity.ReasonItemDamaged,
		PreviousStatus: entity.StatusDelivered,
		Status:         status,
		Settlement:     entity.SettlementNone,
		CreatedAt:      fixedTime,
		UpdatedAt:      fixedTime,
		Version:        1,
	}
}

func TestMissingActorIsRejected(t *testing.T) {
	s := newTestServer(t)

	for _, actor := range []string{"", entity.SystemActor} {
		w := s.do(t, http.MethodGet, "/transactions/txn-1", actor, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, "actor %q", actor)
	}
}
