package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const poolSampleInterval = 30 * time.Second

// ErrNotConnected is returned by Manager methods that need an open connection
var ErrNotConnected = errors.New("database is not connected")

// Manager owns the gorm connection and hands out the postgres adapters
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	retry             RetryConfig
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	poolObserver      func(sql.DBStats)
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger.Named("db"),
		timeProvider: timeProvider,
		retry:        DefaultRetryConfig(),
	}
}

// WithPoolObserver registers a callback that receives every pool sample
func (m *Manager) WithPoolObserver(observer func(sql.DBStats)) *Manager {
	m.poolObserver = observer
	return m
}

// WithRetryConfig overrides the unit-of-work retry policy
func (m *Manager) WithRetryConfig(retry RetryConfig) *Manager {
	m.retry = retry
	return m
}

// Connect opens the connection, retrying RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, err
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	var err error
	var gormDB *gorm.DB

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      m.config.RetryAttempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(m.config.RetryDelay):
			}
		}

		gormDB, err = gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now()
			},
			PrepareStmt: true,
		})
		if err == nil {
			err = m.ping(ctx, gormDB)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect after %d attempts: %s",
			errs.ErrDatabaseConnection, m.config.RetryAttempts, err.Error())
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	m.connectionMonitor = NewConnectionPoolMonitor(func() (sql.DBStats, error) {
		return sqlDB.Stats(), nil
	}, m.logger, m.poolObserver)
	if err := m.connectionMonitor.Start(poolSampleInterval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

func (m *Manager) ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Ping checks the open connection
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	if err := m.ping(ctx, m.db); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// Migrate brings the schema up to date and seeds development items when enabled
func (m *Manager) Migrate(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	if err := m.migrationMgr.MigrateAll(ctx); err != nil {
		return err
	}
	if m.config.SeedItems {
		if err := migration.CreateDefaultItems(ctx, m.db, m.timeProvider.Now()); err != nil {
			return fmt.Errorf("failed to seed items: %w", err)
		}
		m.logger.Info("Seeded default items", nil)
	}
	return nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close stops monitoring and closes the pool
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context bounded by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.retry)
}

// CreateReleaseLeaseRepository returns the lease store backed by release_leases
func (m *Manager) CreateReleaseLeaseRepository() persistence.ReleaseLeaseRepository {
	return repository.NewReleaseLeaseRepository(m.db, m.timeProvider, m.logger)
}

// ItemCatalog returns the catalog backed by the items table
func (m *Manager) ItemCatalog() external.ItemCatalog {
	return repository.NewItemCatalog(m.db, m.logger)
}

// PoolMetrics returns the latest pool sample
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}
