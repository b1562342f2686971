package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// indexDefinition is one idempotent CREATE INDEX statement
type indexDefinition struct {
	name string
	ddl  string
}

// escrowIndexes covers the worker scans and the one-active-dispute rule
func escrowIndexes() []indexDefinition {
	return []indexDefinition{
		{
			name: repository.ActiveDisputeIndex,
			ddl: fmt.Sprintf(`
				CREATE UNIQUE INDEX IF NOT EXISTS %s
				ON disputes (transaction_id)
				WHERE status IN ('open', 'under_review')`, repository.ActiveDisputeIndex),
		},
		{
			name: "idx_transactions_auto_release",
			ddl: `
				CREATE INDEX IF NOT EXISTS idx_transactions_auto_release
				ON transactions (delivered_at, id)
				WHERE status = 'DELIVERED' AND release_state = 'none'`,
		},
		{
			name: "idx_transactions_release_state_updated",
			ddl: `
				CREATE INDEX IF NOT EXISTS idx_transactions_release_state_updated
				ON transactions (release_state, updated_at)
				WHERE release_state <> 'none'`,
		},
		{
			name: "idx_disputes_unsettled",
			ddl: `
				CREATE INDEX IF NOT EXISTS idx_disputes_unsettled
				ON disputes (updated_at, id)
				WHERE status = 'resolved' AND settlement IN ('pending', 'partial')`,
		},
		{
			name: "idx_disputes_transaction_created",
			ddl: `
				CREATE INDEX IF NOT EXISTS idx_disputes_transaction_created
				ON disputes (transaction_id, created_at DESC)`,
		},
		{
			name: "idx_payouts_owner_reference",
			ddl: `
				CREATE INDEX IF NOT EXISTS idx_payouts_owner_reference
				ON payouts (owner_id, reference)`,
		},
		{
			name: "idx_release_leases_expires_at",
			ddl: `
				CREATE INDEX IF NOT EXISTS idx_release_leases_expires_at
				ON release_leases (expires_at)`,
		},
		{
			name: "idx_transactions_created_at_brin",
			ddl: `
				CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
				ON transactions USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
	}
}

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates every escrow index that does not exist yet
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, index := range escrowIndexes() {
		if err := m.db.WithContext(ctx).Exec(index.ddl).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Transactions and disputes are updated in place many times over their life
	tweaks := []string{
		`ALTER TABLE transactions SET (fillfactor = 85)`,
		`ALTER TABLE disputes SET (fillfactor = 85)`,
		`ALTER TABLE payouts SET (fillfactor = 90)`,
		`ALTER TABLE transactions ALTER COLUMN buyer_id SET STATISTICS 500`,
		`ALTER TABLE transactions ALTER COLUMN seller_id SET STATISTICS 500`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
