package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest    = 4000
	CodeInvalidAmount     = 4002
	CodeUnauthorized      = 4030
	CodeNotFound          = 4040
	CodeInvalidTransition = 4090
	CodeConflict          = 4091
	CodeInvalidSplit      = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodePayoutFailure  = 5020
)

// Base error types
var (
	// ErrInvalidTransition is returned when an operation is not permitted from the current status
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrUnauthorized is returned when the acting user does not hold the required role
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidAmounts is returned when a dispute split does not add up to the transaction amount
	ErrInvalidAmounts = errors.New("invalid split amounts")

	// ErrInvalidAmount is returned when a single amount is not a positive minor-unit value
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrConflict is returned when a concurrent operation already changed the record
	ErrConflict = errors.New("conflict")

	// ErrPayoutFailure is returned when the payout provider could not transfer funds
	ErrPayoutFailure = errors.New("payout failure")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	// ErrDisputeNotFound is returned when the requested dispute doesn't exist
	ErrDisputeNotFound = fmt.Errorf("dispute %w", ErrNotFound)

	// ErrItemNotFound is returned when the catalog does not know the item
	ErrItemNotFound = fmt.Errorf("item %w", ErrNotFound)

	// ErrPayoutNotFound is returned when a payout record doesn't exist for a reference
	ErrPayoutNotFound = fmt.Errorf("payout %w", ErrNotFound)

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidReason is returned when a dispute reason is not one of the known values
	ErrInvalidReason = fmt.Errorf("%w: unknown dispute reason", ErrInvalidRequest)

	// ErrInvalidID is returned when an identifier is empty
	ErrInvalidID = fmt.Errorf("%w: identifier cannot be empty", ErrInvalidRequest)

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = fmt.Errorf("%w: amount would overflow", ErrInvalidAmount)

	// ErrLeaseHeld is returned when another worker holds the release lease
	ErrLeaseHeld = fmt.Errorf("%w: release already in progress", ErrConflict)

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidAmounts):
		return CodeInvalidSplit
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrPayoutFailure):
		return CodePayoutFailure
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error onto the HTTP status the API answers with
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeInvalidTransition, CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeInvalidSplit, CodeInvalidAmount:
		return http.StatusUnprocessableEntity
	case CodePayoutFailure:
		return http.StatusBadGateway
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// TransitionError reports an operation that is not allowed from the current status
type TransitionError struct {
	EntityID  string
	Operation string
	Status    string
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed for %s in status %s", e.Operation, e.EntityID, e.Status)
}

// Is checks if the target error is an ErrInvalidTransition
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_transition",
		"entity_id":  e.EntityID,
		"operation":  e.Operation,
		"status":     e.Status,
		"error_code": CodeInvalidTransition,
	}
}

// NewTransitionError creates a new detailed invalid transition error
func NewTransitionError(entityID, operation, status string) error {
	return &TransitionError{EntityID: entityID, Operation: operation, Status: status}
}

// AuthorizationError reports an actor that does not hold the role an operation needs
type AuthorizationError struct {
	UserID       string
	Operation    string
	RequiredRole string
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %q may not %s: requires %s", e.UserID, e.Operation, e.RequiredRole)
}

// Is checks if the target error is an ErrUnauthorized
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// LogFields returns a map of fields for structured logging
func (e *AuthorizationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "unauthorized",
		"user_id":       e.UserID,
		"operation":     e.Operation,
		"required_role": e.RequiredRole,
		"error_code":    CodeUnauthorized,
	}
}

// NewAuthorizationError creates a new detailed authorization error
func NewAuthorizationError(userID, operation, requiredRole string) error {
	return &AuthorizationError{UserID: userID, Operation: operation, RequiredRole: requiredRole}
}

// SplitError reports a dispute split that does not sum to the transaction amount
type SplitError struct {
	DisputeID    string
	Total        int64
	RefundAmount int64
	SellerAmount int64
}

// Error implements the error interface
func (e *SplitError) Error() string {
	return fmt.Sprintf("refund %d + seller %d must equal %d for dispute %s",
		e.RefundAmount, e.SellerAmount, e.Total, e.DisputeID)
}

// Is checks if the target error is an ErrInvalidAmounts
func (e *SplitError) Is(target error) bool {
	return target == ErrInvalidAmounts
}

// LogFields returns a map of fields for structured logging
func (e *SplitError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "invalid_amounts",
		"dispute_id":    e.DisputeID,
		"total":         e.Total,
		"refund_amount": e.RefundAmount,
		"seller_amount": e.SellerAmount,
		"error_code":    CodeInvalidSplit,
	}
}

// NewSplitError creates a new detailed split error
func NewSplitError(disputeID string, total, refundAmount, sellerAmount int64) error {
	return &SplitError{DisputeID: disputeID, Total: total, RefundAmount: refundAmount, SellerAmount: sellerAmount}
}

// ConflictError reports that a record changed underneath the caller
type ConflictError struct {
	EntityID string
	Reason   string
	Err      error
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conflict on %s: %s: %v", e.EntityID, e.Reason, e.Err)
	}
	return fmt.Sprintf("conflict on %s: %s", e.EntityID, e.Reason)
}

// Is checks if the target error is an ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// Unwrap returns the underlying error
func (e *ConflictError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "conflict",
		"entity_id":  e.EntityID,
		"reason":     e.Reason,
		"error_code": CodeConflict,
	}
}

// NewConflictError creates a new detailed conflict error
func NewConflictError(entityID, reason string) error {
	return &ConflictError{EntityID: entityID, Reason: reason}
}

// PayoutError reports payouts that did not reach the confirmed state
type PayoutError struct {
	OwnerID    string
	References []string
	Err        error
}

// Error implements the error interface
func (e *PayoutError) Error() string {
	return fmt.Sprintf("payout failed for %s (references: %v): %v", e.OwnerID, e.References, e.Err)
}

// Is checks if the target error is an ErrPayoutFailure
func (e *PayoutError) Is(target error) bool {
	return target == ErrPayoutFailure
}

// Unwrap returns the underlying error
func (e *PayoutError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PayoutError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "payout_failure",
		"owner_id":   e.OwnerID,
		"references": e.References,
		"error_code": CodePayoutFailure,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewPayoutError creates a new detailed payout error
func NewPayoutError(ownerID string, references []string, err error) error {
	return &PayoutError{OwnerID: ownerID, References: references, Err: err}
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

// IsUnauthorizedError checks if the error is an authorization error
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsPayoutFailureError checks if the error is a payout failure
func IsPayoutFailureError(err error) bool {
	return errors.Is(err, ErrPayoutFailure)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
