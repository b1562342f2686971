package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Escrow      EscrowConfig   `mapstructure:"escrow"`
	Payout      PayoutConfig   `mapstructure:"payout"`
	Notifier    NotifierConfig `mapstructure:"notifier"`
	Storage     StorageConfig  `mapstructure:"storage"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
	SeedItems       bool          `mapstructure:"seedItems"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// EscrowConfig contains the lifecycle and worker settings of the escrow engine
type EscrowConfig struct {
	CommissionBasisPoints  int64         `mapstructure:"commissionBasisPoints"`
	AutoReleaseEnabled     bool          `mapstructure:"autoReleaseEnabled"`
	AutoReleaseGracePeriod time.Duration `mapstructure:"autoReleaseGracePeriod"`
	AutoReleaseInterval    time.Duration `mapstructure:"autoReleaseInterval"`
	AutoReleaseBatchSize   int           `mapstructure:"autoReleaseBatchSize"`
	ReleaseLeaseTimeout    time.Duration `mapstructure:"releaseLeaseTimeout"`
	ReconcileInterval      time.Duration `mapstructure:"reconcileInterval"`
	ReconcileStaleAfter    time.Duration `mapstructure:"reconcileStaleAfter"`
	ReconcileBatchSize     int           `mapstructure:"reconcileBatchSize"`
	QueueSize              int           `mapstructure:"queueSize"`
	AdminUserIDs           []string      `mapstructure:"adminUserIds"`
}

// PayoutConfig selects and tunes the payout provider
type PayoutConfig struct {
	Provider            string            `mapstructure:"provider"` // simulated or stripe
	StripeSecretKey     string            `mapstructure:"stripeSecretKey"`
	StripeAccounts      map[string]string `mapstructure:"stripeAccounts"` // user id to connected account
	Currency            string            `mapstructure:"currency"`
	MaxAttempts         int               `mapstructure:"maxAttempts"`
	RetryBaseDelay      time.Duration     `mapstructure:"retryBaseDelay"`
	BreakerThreshold    int               `mapstructure:"breakerThreshold"`
	BreakerOpenDuration time.Duration     `mapstructure:"breakerOpenDuration"`
}

// NotifierConfig contains party notification settings
type NotifierConfig struct {
	QueueSize      int           `mapstructure:"queueSize"`
	SendTimeout    time.Duration `mapstructure:"sendTimeout"`
	WebhookURL     string        `mapstructure:"webhookUrl"`
	WebhookSecret  string        `mapstructure:"webhookSecret"`
	WebhookTimeout time.Duration `mapstructure:"webhookTimeout"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres or memory
}

// MetricsConfig contains Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
