package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReleaseLeaseRepository implements settlement leases on the release_leases table
type ReleaseLeaseRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.ReleaseLeaseRepository = (*ReleaseLeaseRepository)(nil)

// NewReleaseLeaseRepository creates a new ReleaseLeaseRepository instance
func NewReleaseLeaseRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ReleaseLeaseRepository {
	return &ReleaseLeaseRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLease upserts the lease row. The conflict branch only fires when the
// current lease expired or already belongs to holder, so zero affected rows
// means someone else is settling.
func (r *ReleaseLeaseRepository) AcquireLease(ctx context.Context, key, holder string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO release_leases (lease_key, holder, acquired_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (lease_key) DO UPDATE
		SET holder = EXCLUDED.holder,
		    acquired_at = EXCLUDED.acquired_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE release_leases.expires_at <= ? OR release_leases.holder = EXCLUDED.holder`,
		key, holder, now, expiresAt, now, now,
		now,
	)

	if result.Error != nil {
		if isContextError(result.Error) {
			r.logger.Warn("Context ended acquiring release lease", map[string]any{
				"lease_key": key,
				"error":     result.Error.Error(),
			})
			return fmt.Errorf("lease acquisition timeout: %w", result.Error)
		}
		r.logger.Error("Database error acquiring release lease", map[string]any{
			"lease_key": key,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Release lease held elsewhere", map[string]any{"lease_key": key})
		return errs.ErrLeaseHeld
	}

	r.logger.Debug("Release lease acquired", map[string]any{
		"lease_key":  key,
		"holder":     holder,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLease deletes the lease row when holder still owns it. A context
// failure is tolerated because the lease expires on its own.
func (r *ReleaseLeaseRepository) ReleaseLease(ctx context.Context, key, holder string) error {
	result := r.db.WithContext(ctx).
		Where("lease_key = ? AND holder = ?", key, holder).
		Delete(&model.ReleaseLease{})

	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context ended releasing lease, it will expire", map[string]any{
			"lease_key": key,
			"error":     result.Error.Error(),
		})
		return nil
	}
	if result.Error != nil {
		r.logger.Error("Failed to release lease", map[string]any{
			"lease_key": key,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.wrap(result.Error)
	}
	return nil
}

func isContextError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "context deadline exceeded") || strings.Contains(msg, "context canceled")
}
