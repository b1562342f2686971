package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// DisputeHandler handles dispute HTTP requests
type DisputeHandler struct {
	disputes usecase.DisputeUseCase
	logger   coreport.Logger
}

// NewDisputeHandler creates a new dispute handler instance
func NewDisputeHandler(disputes usecase.DisputeUseCase, logger coreport.Logger) *DisputeHandler {
	return &DisputeHandler{
		disputes: disputes,
		logger:   logger,
	}
}

// OpenDispute handles POST /transactions/:id/disputes
func (h *DisputeHandler) OpenDispute(c *gin.Context) {
	var req dto.OpenDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	d, err := h.disputes.OpenDispute(c.Request.Context(), usecase.OpenDisputeRequest{
		TransactionID: c.Param("id"),
		ActingUserID:  middleware.ActorID(c),
		Reason:        entity.DisputeReason(req.Reason),
		Description:   req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewDisputeResponse(d))
}

// GetDisputeForTransaction handles GET /transactions/:id/dispute
func (h *DisputeHandler) GetDisputeForTransaction(c *gin.Context) {
	d, err := h.disputes.GetDisputeForTransaction(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	h.respondDispute(c, d, err)
}

// GetDispute handles GET /disputes/:id
func (h *DisputeHandler) GetDispute(c *gin.Context) {
	d, err := h.disputes.GetDispute(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	h.respondDispute(c, d, err)
}

// SubmitEvidence handles PUT /disputes/:id/evidence
func (h *DisputeHandler) SubmitEvidence(c *gin.Context) {
	var req dto.EvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}
	d, err := h.disputes.SubmitEvidence(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.ToBundle())
	h.respondDispute(c, d, err)
}

// BeginReview handles POST /disputes/:id/review
func (h *DisputeHandler) BeginReview(c *gin.Context) {
	d, err := h.disputes.BeginReview(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	h.respondDispute(c, d, err)
}

// AddAdminNotes handles PUT /disputes/:id/notes
func (h *DisputeHandler) AddAdminNotes(c *gin.Context) {
	var req dto.AdminNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}
	d, err := h.disputes.AddAdminNotes(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.Notes)
	h.respondDispute(c, d, err)
}

// ResolveDispute handles POST /disputes/:id/resolve
func (h *DisputeHandler) ResolveDispute(c *gin.Context) {
	var req dto.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}
	d, err := h.disputes.ResolveDispute(c.Request.Context(), usecase.ResolveDisputeRequest{
		DisputeID:    c.Param("id"),
		AdminID:      middleware.ActorID(c),
		Outcome:      entity.DisputeOutcome(req.Outcome),
		Resolution:   req.Resolution,
		RefundAmount: *req.RefundAmount,
		SellerAmount: *req.SellerAmount,
	})
	h.respondDispute(c, d, err)
}

// CloseDispute handles POST /disputes/:id/close
func (h *DisputeHandler) CloseDispute(c *gin.Context) {
	var req dto.CloseDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}
	d, err := h.disputes.CloseDispute(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.Note)
	h.respondDispute(c, d, err)
}

// RetryPayouts handles POST /disputes/:id/retry-payouts
func (h *DisputeHandler) RetryPayouts(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.disputes.GetDispute(ctx, c.Param("id"), middleware.ActorID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	d, err := h.disputes.RetryPayouts(ctx, c.Param("id"))
	h.respondDispute(c, d, err)
}

func (h *DisputeHandler) respondDispute(c *gin.Context, d *entity.Dispute, err error) {
	if err != nil {
		if d != nil && errs.IsPayoutFailureError(err) {
			respondPartial(c, h.logger, err, string(d.Status), dto.NewDisputeResponse(d))
			return
		}
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDisputeResponse(d))
}
