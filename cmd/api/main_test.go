package main

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppConfig() *config.Config {
	return &config.Config{
		Environment: config.Test,
		Server: config.ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "info"},
		Escrow: config.EscrowConfig{
			CommissionBasisPoints:  500,
			AutoReleaseEnabled:     true,
			AutoReleaseGracePeriod: time.Hour,
			ReleaseLeaseTimeout:    2 * time.Minute,
			ReconcileStaleAfter:    10 * time.Minute,
		},
		Payout:  config.PayoutConfig{Provider: "simulated"},
		Storage: config.StorageConfig{Driver: "memory"},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid memory config", mutate: func(*config.Config) {}},
		{
			name:    "postgres needs connection settings",
			mutate:  func(c *config.Config) { c.Storage.Driver = "postgres" },
			wantErr: "database.host",
		},
		{
			name:    "unknown storage driver",
			mutate:  func(c *config.Config) { c.Storage.Driver = "sqlite" },
			wantErr: "invalid storage.driver",
		},
		{
			name:    "stripe needs a secret key",
			mutate:  func(c *config.Config) { c.Payout.Provider = "stripe"; c.Payout.Currency = "usd" },
			wantErr: "payout.stripeSecretKey",
		},
		{
			name:    "unknown payout provider",
			mutate:  func(c *config.Config) { c.Payout.Provider = "paypal" },
			wantErr: "invalid payout.provider",
		},
		{
			name:    "commission above 100%",
			mutate:  func(c *config.Config) { c.Escrow.CommissionBasisPoints = 10001 },
			wantErr: "commissionBasisPoints",
		},
		{
			name:    "stale threshold inside lease timeout",
			mutate:  func(c *config.Config) { c.Escrow.ReconcileStaleAfter = time.Minute },
			wantErr: "reconcileStaleAfter",
		},
		{
			name:    "auto release without grace period",
			mutate:  func(c *config.Config) { c.Escrow.AutoReleaseGracePeriod = 0 },
			wantErr: "escrow.autoReleaseGracePeriod",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *config.Config) { c.Environment = "staging" },
			wantErr: "invalid environment value",
		},
		{
			name:    "missing server port",
			mutate:  func(c *config.Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildPayoutService(t *testing.T) {
	cfg := validAppConfig()

	t.Run("simulated provider behind a closed breaker", func(t *testing.T) {
		service, breaker, err := buildPayoutService(cfg.Payout, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider(), nil)
		require.NoError(t, err)
		assert.NotNil(t, service)
		assert.Equal(t, "closed", breaker.State().String())
	})

	t.Run("stripe without a key fails", func(t *testing.T) {
		_, _, err := buildPayoutService(config.PayoutConfig{Provider: "stripe", Currency: "usd"}, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider(), nil)
		assert.Error(t, err)
	})
}

func TestDevelopmentItems(t *testing.T) {
	items := developmentItems()
	require.Len(t, items, 3)
	assert.True(t, items[2].HasBusiness())
}
