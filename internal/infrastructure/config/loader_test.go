package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repoConfigs = "../../../configs"

func TestLoad_TestEnvironment(t *testing.T) {
	cfg, err := Load(Test, repoConfigs)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, int64(250), cfg.Escrow.CommissionBasisPoints)
	assert.False(t, cfg.Escrow.AutoReleaseEnabled)
	assert.Equal(t, time.Second, cfg.Escrow.AutoReleaseGracePeriod)
	assert.Equal(t, []string{"admin-1", "admin-2"}, cfg.Escrow.AdminUserIDs)
	assert.Equal(t, "simulated", cfg.Payout.Provider)
	assert.Equal(t, time.Millisecond, cfg.Payout.RetryBaseDelay)
	assert.Equal(t, "acct_test_seller", cfg.Payout.StripeAccounts["seller-1"])
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.False(t, cfg.Metrics.Enabled)

	// untouched by the file
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5, cfg.Payout.BreakerThreshold)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("staging", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(500), cfg.Escrow.CommissionBasisPoints)
	assert.Equal(t, 72*time.Hour, cfg.Escrow.AutoReleaseGracePeriod)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Empty(t, cfg.Escrow.AdminUserIDs)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("server: [unterminated"), 0o600))

	_, err := Load("broken", dir)
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ESCROW_DB_HOST", "db.internal")
	t.Setenv("ESCROW_DB_PORT", "6543")
	t.Setenv("ESCROW_DB_PASSWORD", "s3cret")
	t.Setenv("ESCROW_STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("ESCROW_ADMIN_USER_IDS", " admin-9 , ,admin-10")
	t.Setenv("ESCROW_COMMISSION_BASIS_POINTS", "300")

	cfg, err := Load(Test, repoConfigs)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "sk_test_123", cfg.Payout.StripeSecretKey)
	assert.Equal(t, []string{"admin-9", "admin-10"}, cfg.Escrow.AdminUserIDs)
	assert.Equal(t, int64(300), cfg.Escrow.CommissionBasisPoints)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("ESCROW_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("ESCROW_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, b,,"))
	assert.Empty(t, splitList(" , "))
}

func TestLoad_StripeAccountsKeepCase(t *testing.T) {
	t.Setenv("ESCROW_STRIPE_ACCOUNTS", "Seller-A=acct_upper, seller-a=acct_lower")

	cfg, err := Load(Test, repoConfigs)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"Seller-A": "acct_upper", "seller-a": "acct_lower"}, cfg.Payout.StripeAccounts)
}

func TestParseAccounts(t *testing.T) {
	accounts, err := parseAccounts("u1=acct_1,U1=acct_2")
	require.NoError(t, err)
	assert.Equal(t, "acct_1", accounts["u1"])
	assert.Equal(t, "acct_2", accounts["U1"])

	_, err = parseAccounts("u1")
	assert.Error(t, err)
	_, err = parseAccounts("=acct_1")
	assert.Error(t, err)
}
