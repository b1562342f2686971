package usecase

import (
	"context"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// CreateTransactionRequest describes a checkout
type CreateTransactionRequest struct {
	BuyerID  string
	ItemID   string
	Amount   int64
	Delivery entity.DeliveryDetails
}

// TransactionUseCase drives the escrow lifecycle of a purchase
type TransactionUseCase interface {
	// CreateTransaction opens a PENDING transaction for the item's seller
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*entity.Transaction, error)

	// ConfirmPayment records that the buyer's funds are held (PENDING to PAID)
	ConfirmPayment(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error)

	// MarkShipped is performed by the seller (PAID to SHIPPED)
	MarkShipped(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error)

	// MarkDelivered is performed by the buyer (SHIPPED to DELIVERED)
	MarkDelivered(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error)

	// CompleteTransaction releases the seller's share exactly once (DELIVERED to COMPLETED).
	// actingUserID is the buyer or entity.SystemActor.
	CompleteTransaction(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error)

	// CancelTransaction abandons an unpaid transaction
	CancelTransaction(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error)

	// RetryRelease resumes a release that failed or was interrupted
	RetryRelease(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// GetTransaction is visible to the two parties and admins
	GetTransaction(ctx context.Context, transactionID, actingUserID string) (*entity.Transaction, error)

	// ListPayouts returns the payout records of a transaction
	ListPayouts(ctx context.Context, transactionID, actingUserID string) ([]*entity.Payout, error)
}
