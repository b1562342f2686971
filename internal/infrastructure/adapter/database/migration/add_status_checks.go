package migration

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"gorm.io/gorm"
)

// AddStatusChecks constrains every status column to the values the state machines know,
// and dispute reasons to the known set
type AddStatusChecks struct {
	db     *gorm.DB
	logger coreport.Logger
}

type statusCheck struct {
	table      string
	name       string
	column     string
	allowedSet []string
}

// NewAddStatusChecks creates a new migration instance
func NewAddStatusChecks(db *gorm.DB, logger coreport.Logger) *AddStatusChecks {
	return &AddStatusChecks{db: db, logger: logger}
}

func statusChecks() []statusCheck {
	reasons := make([]string, 0, len(entity.DisputeReasons()))
	for _, reason := range entity.DisputeReasons() {
		reasons = append(reasons, string(reason))
	}

	return []statusCheck{
		{"transactions", "chk_transactions_status", "status", []string{
			string(entity.StatusPending), string(entity.StatusPaid), string(entity.StatusShipped),
			string(entity.StatusDelivered), string(entity.StatusCompleted), string(entity.StatusDisputed),
			string(entity.StatusCancelled),
		}},
		{"transactions", "chk_transactions_release_state", "release_state", []string{
			string(entity.ReleaseNone), string(entity.ReleaseInProgress),
			string(entity.ReleaseFailed), string(entity.ReleaseDone),
		}},
		{"disputes", "chk_disputes_status", "status", []string{
			string(entity.DisputeOpen), string(entity.DisputeUnderReview),
			string(entity.DisputeResolved), string(entity.DisputeClosed),
		}},
		{"disputes", "chk_disputes_reason", "reason", reasons},
		{"payouts", "chk_payouts_state", "state", []string{
			string(entity.PayoutPending), string(entity.PayoutAttempted),
			string(entity.PayoutConfirmed), string(entity.PayoutFailed),
		}},
	}
}

// Run executes the migration
func (m *AddStatusChecks) Run(ctx context.Context) error {
	m.logger.Info("Adding status check constraints", nil)

	for _, check := range statusChecks() {
		exists, err := m.constraintExists(ctx, check.name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		quoted := make([]string, len(check.allowedSet))
		for i, v := range check.allowedSet {
			quoted[i] = "'" + v + "'"
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s IN (%s))",
			check.table, check.name, check.column, strings.Join(quoted, ", "))
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to add status check", map[string]any{
				"constraint": check.name,
				"error":      err.Error(),
			})
			return err
		}
	}

	// Amount conservation on the row itself
	exists, err := m.constraintExists(ctx, "chk_transactions_split")
	if err != nil {
		return err
	}
	if !exists {
		if err := m.db.WithContext(ctx).Exec(`
			ALTER TABLE transactions ADD CONSTRAINT chk_transactions_split
			CHECK (commission + seller_amount = amount)
		`).Error; err != nil {
			return err
		}
	}

	m.logger.Info("Status check constraints in place", nil)
	return nil
}

func (m *AddStatusChecks) constraintExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM pg_constraint WHERE conname = ?
	`, name).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to inspect constraints", map[string]any{
			"constraint": name,
			"error":      err.Error(),
		})
		return false, err
	}
	return count > 0, nil
}
