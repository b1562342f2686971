package transaction

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/usecase"
)

// TransactionValidator provides validation for transaction requests
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateCreate checks a checkout request before the catalog is consulted
func (v *TransactionValidator) ValidateCreate(req usecase.CreateTransactionRequest) error {
	if strings.TrimSpace(req.BuyerID) == "" || strings.TrimSpace(req.ItemID) == "" {
		return errs.ErrInvalidID
	}
	if req.Amount < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidAmount, req.Amount)
	}
	if !req.Delivery.Method.IsValid() {
		return fmt.Errorf("%w: unknown delivery method %q", errs.ErrInvalidRequest, req.Delivery.Method)
	}
	return nil
}

// ValidateAgainstItem checks the request against the listing it buys
func (v *TransactionValidator) ValidateAgainstItem(req usecase.CreateTransactionRequest, item *entity.Item) error {
	if !item.Available {
		return errs.NewConflictError(item.ID, "item is no longer available")
	}
	if item.SellerID == req.BuyerID {
		return fmt.Errorf("%w: buyer cannot purchase their own item", errs.ErrInvalidRequest)
	}
	if req.Amount != 0 && req.Amount != item.Price {
		return fmt.Errorf("%w: amount %d does not match listing price %d", errs.ErrInvalidAmount, req.Amount, item.Price)
	}
	return nil
}

// ValidateID checks an identifier taken from a request path
func (v *TransactionValidator) ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.ErrInvalidID
	}
	return nil
}
