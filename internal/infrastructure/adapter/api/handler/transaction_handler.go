package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction lifecycle HTTP requests
type TransactionHandler struct {
	transactions usecase.TransactionUseCase
	reviews      usecase.ReviewUseCase
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactions usecase.TransactionUseCase,
	reviews usecase.ReviewUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		reviews:      reviews,
		logger:       logger,
	}
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	txn, err := h.transactions.CreateTransaction(c.Request.Context(), usecase.CreateTransactionRequest{
		BuyerID:  middleware.ActorID(c),
		ItemID:   req.ItemID,
		Amount:   req.Amount,
		Delivery: req.Delivery.ToDelivery(),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// GetTransaction handles GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	txn, err := h.transactions.GetTransaction(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// ListPayouts handles GET /transactions/:id/payouts
func (h *TransactionHandler) ListPayouts(c *gin.Context) {
	payouts, err := h.transactions.ListPayouts(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPayoutResponses(payouts))
}

type transitionFunc func(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error)

// transition adapts a party-driven lifecycle operation to a handler
func (h *TransactionHandler) transition(op transitionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		txn, err := op(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
		h.respondTransaction(c, txn, err)
	}
}

// ConfirmPayment handles POST /transactions/:id/pay
func (h *TransactionHandler) ConfirmPayment(c *gin.Context) {
	h.transition(h.transactions.ConfirmPayment)(c)
}

// MarkShipped handles POST /transactions/:id/ship
func (h *TransactionHandler) MarkShipped(c *gin.Context) {
	h.transition(h.transactions.MarkShipped)(c)
}

// MarkDelivered handles POST /transactions/:id/deliver
func (h *TransactionHandler) MarkDelivered(c *gin.Context) {
	h.transition(h.transactions.MarkDelivered)(c)
}

// CompleteTransaction handles POST /transactions/:id/complete
func (h *TransactionHandler) CompleteTransaction(c *gin.Context) {
	h.transition(h.transactions.CompleteTransaction)(c)
}

// CancelTransaction handles POST /transactions/:id/cancel
func (h *TransactionHandler) CancelTransaction(c *gin.Context) {
	h.transition(h.transactions.CancelTransaction)(c)
}

// RetryRelease handles POST /transactions/:id/retry-release. Only callers who
// may see the transaction can drive its release again.
func (h *TransactionHandler) RetryRelease(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.transactions.GetTransaction(ctx, c.Param("id"), middleware.ActorID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	txn, err := h.transactions.RetryRelease(ctx, c.Param("id"))
	h.respondTransaction(c, txn, err)
}

// ReviewEligibility handles GET /transactions/:id/review-eligibility
func (h *TransactionHandler) ReviewEligibility(c *gin.Context) {
	transactionID := c.Param("id")
	eligibility, err := h.reviews.CheckEligibility(c.Request.Context(), transactionID, middleware.ActorID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReviewEligibilityResponse{
		TransactionID: transactionID,
		Eligible:      eligibility.Eligible,
		BusinessID:    eligibility.BusinessID,
		Reason:        eligibility.Reason,
	})
}

func (h *TransactionHandler) respondTransaction(c *gin.Context, txn *entity.Transaction, err error) {
	if err != nil {
		if txn != nil && errs.IsPayoutFailureError(err) {
			respondPartial(c, h.logger, err, string(txn.Status), dto.NewTransactionResponse(txn))
			return
		}
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}
