package routes

import (
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Transactions *handler.TransactionHandler
	Disputes     *handler.DisputeHandler
	Health       *handler.HealthHandler
	// Metrics serves the Prometheus exposition; nil leaves /metrics unmounted
	Metrics gin.HandlerFunc
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		router.GET("/metrics", h.Metrics)
	}

	transactionRoutes := router.Group("/transactions", middleware.Actor())
	{
		transactionRoutes.POST("", h.Transactions.CreateTransaction)
		transactionRoutes.GET("/:id", h.Transactions.GetTransaction)
		transactionRoutes.GET("/:id/payouts", h.Transactions.ListPayouts)
		transactionRoutes.GET("/:id/review-eligibility", h.Transactions.ReviewEligibility)

		transactionRoutes.POST("/:id/pay", h.Transactions.ConfirmPayment)
		transactionRoutes.POST("/:id/ship", h.Transactions.MarkShipped)
		transactionRoutes.POST("/:id/deliver", h.Transactions.MarkDelivered)
		transactionRoutes.POST("/:id/complete", h.Transactions.CompleteTransaction)
		transactionRoutes.POST("/:id/cancel", h.Transactions.CancelTransaction)
		transactionRoutes.POST("/:id/retry-release", h.Transactions.RetryRelease)

		transactionRoutes.POST("/:id/disputes", h.Disputes.OpenDispute)
		transactionRoutes.GET("/:id/dispute", h.Disputes.GetDisputeForTransaction)
	}

	disputeRoutes := router.Group("/disputes", middleware.Actor())
	{
		disputeRoutes.GET("/:id", h.Disputes.GetDispute)
		disputeRoutes.PUT("/:id/evidence", h.Disputes.SubmitEvidence)
		disputeRoutes.PUT("/:id/notes", h.Disputes.AddAdminNotes)
		disputeRoutes.POST("/:id/review", h.Disputes.BeginReview)
		disputeRoutes.POST("/:id/resolve", h.Disputes.ResolveDispute)
		disputeRoutes.POST("/:id/close", h.Disputes.CloseDispute)
		disputeRoutes.POST("/:id/retry-payouts", h.Disputes.RetryPayouts)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// httpMetrics may be nil.
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	ids coreport.IDGenerator,
	httpMetrics gin.HandlerFunc,
) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID(ids))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
	if httpMetrics != nil {
		router.Use(httpMetrics)
	}
}
