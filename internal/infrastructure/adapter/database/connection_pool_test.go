package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/neighborhood-escrow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("samples on start and forwards to the observer", func(t *testing.T) {
		var observed []sql.DBStats
		stats := sql.DBStats{MaxOpenConnections: 10, OpenConnections: 3, InUse: 2, Idle: 1, WaitCount: 4}

		monitor := NewConnectionPoolMonitor(func() (sql.DBStats, error) { return stats, nil },
			logger.NewNoopLogger(), func(s sql.DBStats) { observed = append(observed, s) })
		require.NoError(t, monitor.Start(time.Hour))
		defer monitor.Stop()

		metrics := monitor.GetMetrics()
		assert.Equal(t, 3, metrics.OpenConnections)
		assert.Equal(t, 2, metrics.InUse)
		assert.Equal(t, int64(4), metrics.WaitCount)
		require.Len(t, observed, 1)
	})

	t.Run("warns when the pool is nearly exhausted", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

		monitor := NewConnectionPoolMonitor(func() (sql.DBStats, error) {
			return sql.DBStats{MaxOpenConnections: 10, InUse: 9}, nil
		}, mockLogger, nil)
		require.NoError(t, monitor.Start(time.Hour))
		monitor.Stop()
		monitor.Stop()
	})

	t.Run("start fails when stats are unavailable", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(func() (sql.DBStats, error) {
			return sql.DBStats{}, errors.New("closed")
		}, logger.NewNoopLogger(), nil)
		assert.Error(t, monitor.Start(time.Hour))
		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
	})
}
