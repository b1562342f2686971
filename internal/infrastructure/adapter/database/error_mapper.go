package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error. Errors that already
// carry a domain meaning pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errs.ErrorCode(err) != errs.CodeInternalServer {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	errMsg := strings.ToLower(err.Error())

	// Serialization failures that outlived the retries are reported as conflicts
	if strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "could not serialize access") ||
		strings.Contains(errMsg, "lock timeout") {
		return &errs.ConflictError{EntityID: operation, Reason: "concurrent update", Err: err}
	}

	if errors.Is(err, errs.ErrDatabaseConnection) || errors.Is(err, errs.ErrConstraintViolation) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}

	switch {
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return &errs.ConflictError{EntityID: operation, Reason: "duplicate record", Err: err}

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, operation)

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, operation)

	case strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %s operation timed out", errs.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, operation)
	}
}
