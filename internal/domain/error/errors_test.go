package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidTransition", ErrInvalidTransition, CodeInvalidTransition},
		{"Unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"InvalidAmounts", ErrInvalidAmounts, CodeInvalidSplit},
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"AmountOverflow", ErrAmountOverflow, CodeInvalidAmount},
		{"Conflict", ErrConflict, CodeConflict},
		{"LeaseHeld", ErrLeaseHeld, CodeConflict},
		{"PayoutFailure", ErrPayoutFailure, CodePayoutFailure},
		{"TransactionNotFound", ErrTransactionNotFound, CodeNotFound},
		{"DisputeNotFound", ErrDisputeNotFound, CodeNotFound},
		{"InvalidReason", ErrInvalidReason, CodeInvalidRequest},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnauthorized), CodeUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidTransition", NewTransitionError("tx-1", "ship", "PENDING"), http.StatusConflict},
		{"Unauthorized", NewAuthorizationError("u-1", "ship", "seller"), http.StatusForbidden},
		{"InvalidAmounts", NewSplitError("d-1", 100, 50, 40), http.StatusUnprocessableEntity},
		{"Conflict", NewConflictError("tx-1", "dispute already open"), http.StatusConflict},
		{"PayoutFailure", NewPayoutError("tx-1", []string{"tx-1:seller"}, errors.New("declined")), http.StatusBadGateway},
		{"NotFound", ErrTransactionNotFound, http.StatusNotFound},
		{"InvalidRequest", ErrInvalidID, http.StatusBadRequest},
		{"Internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestTransitionError(t *testing.T) {
	err := NewTransitionError("tx-1", "ship", "PENDING")

	expectedMsg := "ship not allowed for tx-1 in status PENDING"
	if err.Error() != expectedMsg {
		t.Errorf("TransitionError.Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !IsInvalidTransitionError(err) {
		t.Errorf("IsInvalidTransitionError(err) = false, want true")
	}

	var typed *TransitionError
	if !errors.As(err, &typed) {
		t.Fatalf("errors.As(err, *TransitionError) = false, want true")
	}
	fields := typed.LogFields()
	if fields["status"] != "PENDING" || fields["operation"] != "ship" {
		t.Errorf("LogFields() = %v, missing status or operation", fields)
	}
}

func TestAuthorizationError(t *testing.T) {
	err := NewAuthorizationError("u-9", "resolveDispute", "admin")

	if !IsUnauthorizedError(err) {
		t.Errorf("IsUnauthorizedError(err) = false, want true")
	}
	var typed *AuthorizationError
	if !errors.As(err, &typed) || typed.RequiredRole != "admin" {
		t.Errorf("expected AuthorizationError with required role admin, got %v", err)
	}
}

func TestSplitError(t *testing.T) {
	err := NewSplitError("d-1", 10000, 7000, 2000)

	expectedMsg := "refund 7000 + seller 2000 must equal 10000 for dispute d-1"
	if err.Error() != expectedMsg {
		t.Errorf("SplitError.Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !errors.Is(err, ErrInvalidAmounts) {
		t.Errorf("errors.Is(err, ErrInvalidAmounts) = false, want true")
	}
}

func TestConflictErrorUnwrap(t *testing.T) {
	cause := errors.New("version mismatch")
	err := &ConflictError{EntityID: "tx-1", Reason: "stale record", Err: cause}

	if !IsConflictError(err) {
		t.Errorf("IsConflictError(err) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestPayoutError(t *testing.T) {
	cause := errors.New("provider declined")
	err := NewPayoutError("tx-1", []string{"tx-1:seller"}, cause)

	if !IsPayoutFailureError(err) {
		t.Errorf("IsPayoutFailureError(err) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	var typed *PayoutError
	if !errors.As(err, &typed) {
		t.Fatalf("errors.As(err, *PayoutError) = false, want true")
	}
	if typed.LogFields()["error"] != "provider declined" {
		t.Errorf("LogFields()[error] = %v, want provider declined", typed.LogFields()["error"])
	}
}

func TestIsNotFoundError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrNotFound", ErrNotFound, true},
		{"ErrTransactionNotFound", ErrTransactionNotFound, true},
		{"ErrDisputeNotFound", ErrDisputeNotFound, true},
		{"ErrItemNotFound", ErrItemNotFound, true},
		{"Wrapped", fmt.Errorf("lookup: %w", ErrPayoutNotFound), true},
		{"Other", ErrConflict, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFoundError(tc.err); got != tc.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}
