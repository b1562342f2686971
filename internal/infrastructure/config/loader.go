package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ESCROW"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

var errNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration for the environment named by ESCROW_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, errNoDotEnv) {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads configs/<env>.yaml from the first path that has it, then applies
// environment overrides. A missing file leaves the defaults in place.
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	// viper lowercases map keys, so case-sensitive user IDs come from the environment
	if accounts := os.Getenv("ESCROW_STRIPE_ACCOUNTS"); accounts != "" {
		parsed, err := parseAccounts(accounts)
		if err != nil {
			return nil, err
		}
		config.Payout.StripeAccounts = parsed
	}

	return &config, nil
}

func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errNoDotEnv
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.readHeaderTimeout", 10*time.Second)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30*time.Minute)
	v.SetDefault("database.connMaxIdleTime", 15*time.Minute)
	v.SetDefault("database.queryTimeout", 5*time.Second)
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", time.Second)
	v.SetDefault("database.seedItems", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("escrow.commissionBasisPoints", 500)
	v.SetDefault("escrow.autoReleaseEnabled", true)
	v.SetDefault("escrow.autoReleaseGracePeriod", 72*time.Hour)
	v.SetDefault("escrow.autoReleaseInterval", time.Minute)
	v.SetDefault("escrow.autoReleaseBatchSize", 100)
	v.SetDefault("escrow.releaseLeaseTimeout", 2*time.Minute)
	v.SetDefault("escrow.reconcileInterval", 5*time.Minute)
	v.SetDefault("escrow.reconcileStaleAfter", 10*time.Minute)
	v.SetDefault("escrow.reconcileBatchSize", 50)
	v.SetDefault("escrow.queueSize", 1000)
	v.SetDefault("escrow.adminUserIds", []string{})

	v.SetDefault("payout.provider", "simulated")
	v.SetDefault("payout.stripeSecretKey", "")
	v.SetDefault("payout.currency", "usd")
	v.SetDefault("payout.maxAttempts", 3)
	v.SetDefault("payout.retryBaseDelay", 200*time.Millisecond)
	v.SetDefault("payout.breakerThreshold", 5)
	v.SetDefault("payout.breakerOpenDuration", 30*time.Second)

	v.SetDefault("notifier.queueSize", 1000)
	v.SetDefault("notifier.sendTimeout", 5*time.Second)
	v.SetDefault("notifier.webhookUrl", "")
	v.SetDefault("notifier.webhookSecret", "")
	v.SetDefault("notifier.webhookTimeout", 5*time.Second)

	v.SetDefault("storage.driver", "postgres")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment from ESCROW_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides gives the short, documented variables precedence over
// config file values. Secrets are only ever expected to arrive this way.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"ESCROW_DB_HOST":                 "database.host",
		"ESCROW_DB_PORT":                 "database.port",
		"ESCROW_DB_USERNAME":             "database.username",
		"ESCROW_DB_PASSWORD":             "database.password",
		"ESCROW_DB_NAME":                 "database.database",
		"ESCROW_DB_SSL_MODE":             "database.sslMode",
		"ESCROW_SERVER_HOST":             "server.host",
		"ESCROW_SERVER_PORT":             "server.port",
		"ESCROW_LOGGER_LEVEL":            "logger.level",
		"ESCROW_STORAGE_DRIVER":          "storage.driver",
		"ESCROW_PAYOUT_PROVIDER":         "payout.provider",
		"ESCROW_STRIPE_SECRET_KEY":       "payout.stripeSecretKey",
		"ESCROW_WEBHOOK_URL":             "notifier.webhookUrl",
		"ESCROW_WEBHOOK_SECRET":          "notifier.webhookSecret",
		"ESCROW_COMMISSION_BASIS_POINTS": "escrow.commissionBasisPoints",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if admins := os.Getenv("ESCROW_ADMIN_USER_IDS"); admins != "" {
		v.Set("escrow.adminUserIds", splitList(admins))
	}
}

// parseAccounts reads "user=acct,user=acct" keeping user IDs as written
func parseAccounts(value string) (map[string]string, error) {
	accounts := make(map[string]string)
	for _, pair := range splitList(value) {
		user, account, ok := strings.Cut(pair, "=")
		user, account = strings.TrimSpace(user), strings.TrimSpace(account)
		if !ok || user == "" || account == "" {
			return nil, fmt.Errorf("invalid ESCROW_STRIPE_ACCOUNTS entry %q", pair)
		}
		accounts[user] = account
	}
	return accounts, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
