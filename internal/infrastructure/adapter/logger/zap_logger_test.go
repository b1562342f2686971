package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Run("should filter messages below the configured level", func(t *testing.T) {
		level := zap.NewAtomicLevelAt(zap.InfoLevel)
		obsCore, logs := observer.New(level)
		log := NewZapLoggerWithCore(obsCore, level)

		log.Debug("hidden", nil)
		log.SetLevel(core.LogLevelWarn)
		log.Info("also hidden", nil)
		log.Warn("shown", map[string]any{"transaction_id": "tx-1"})

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "shown", entry.Message)
		assert.Equal(t, "tx-1", entry.ContextMap()["transaction_id"])
		assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	})

	t.Run("should share level with named children and encode errors", func(t *testing.T) {
		level := zap.NewAtomicLevelAt(zap.InfoLevel)
		obsCore, logs := observer.New(level)
		log := NewZapLoggerWithCore(obsCore, level)

		child := log.Named("payout")
		log.SetLevel(core.LogLevelError)
		child.Warn("dropped", nil)
		child.Error("failed", map[string]any{"error": errors.New("declined")})

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "payout", entry.LoggerName)
		assert.Equal(t, "declined", entry.ContextMap()["error"])
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("bogus"))
}
