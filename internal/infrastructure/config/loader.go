package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
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

// EnvPrefix prefixes every environment override, e.g. LL_DB_HOST
const EnvPrefix = "LL"

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

// envOverrides maps environment variables onto config keys. Secrets are
// expected to arrive this way rather than through the YAML file.
var envOverrides = map[string]string{
	"LL_DB_DRIVER":            "database.driver",
	"LL_DB_HOST":              "database.host",
	"LL_DB_PORT":              "database.port",
	"LL_DB_USERNAME":          "database.username",
	"LL_DB_PASSWORD":          "database.password",
	"LL_DB_NAME":              "database.database",
	"LL_DB_SSL_MODE":          "database.sslMode",
	"LL_DB_SQLITE_PATH":       "database.sqlitePath",
	"LL_SERVER_HOST":          "server.host",
	"LL_LOGGER_LEVEL":         "logger.level",
	"LL_LOGGER_FORMAT":        "logger.format",
	"LL_AUTH_JWT_SECRET":      "auth.jwtSecret",
	"LL_AUTH_ISSUER":          "auth.issuer",
	"LL_PAYMENT_SECRET_KEY":   "payment.secretKey",
	"LL_PAYMENT_BASE_URL":     "payment.baseUrl",
	"LL_PAYMENT_CALLBACK_URL": "payment.callbackUrl",
}

// envIntOverrides are numeric overrides; unparsable values are ignored
var envIntOverrides = map[string]string{
	"LL_SERVER_PORT":                   "server.port",
	"LL_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
	"LL_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
	"LL_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
	"LL_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
	"LL_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
	"LL_DB_RETRY_ATTEMPTS":             "database.retryAttempts",
	"LL_DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
	"LL_BONUS_AMOUNT":                  "bonus.amount",
	"LL_RATE_LIMIT_ADMIN_REQUESTS":     "rateLimit.adminRequests",
}

// LoadConfig loads configuration for the environment named by LL_ENV
func LoadConfig() (*Config, error) {
	return Load("")
}

// Load reads configuration. When path is empty the file is looked up as
// configs/<env>.yaml; a missing file is tolerated so the service can run on
// defaults plus environment variables.
func Load(path string) (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(env)
		v.SetConfigType("yaml")
		for _, p := range ConfigPaths {
			v.AddConfigPath(p)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set environment variables to override config
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	if adminEmails := os.Getenv("LL_AUTH_ADMIN_EMAILS"); adminEmails != "" {
		config.Auth.AdminEmails = splitList(adminEmails)
	}
	if origins := os.Getenv("LL_SERVER_ALLOWED_ORIGINS"); origins != "" {
		config.Server.AllowedOrigins = splitList(origins)
	}

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-secret settings
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 10)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 5)
	v.SetDefault("server.shutdownTimeout", 20)
	v.SetDefault("server.allowedOrigins", []string{"*"})

	// Database defaults
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "linkledger.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 5)
	v.SetDefault("database.connMaxIdleTime", 5)
	v.SetDefault("database.queryTimeout", 10)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.adminEmails", []string{})

	v.SetDefault("payment.baseUrl", "https://api.paystack.co")
	v.SetDefault("payment.timeout", 15)

	v.SetDefault("pricing.basePrice", 4000)
	v.SetDefault("pricing.extraPlatformPrice", 2500)
	v.SetDefault("pricing.extraPagePrice", 1500)

	v.SetDefault("bonus.amount", 2000)

	v.SetDefault("rateLimit.adminRequests", 20)
	v.SetDefault("rateLimit.adminWindow", 60)
}

// getEnvironment determines the environment from LL_ENV
func getEnvironment() string {
	env := os.Getenv("LL_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}
	for name, key := range envIntOverrides {
		if value, ok := getEnvInt(name); ok {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	// Convert minutes to time.Duration
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Payment.Timeout = time.Duration(config.Payment.Timeout) * time.Second
	config.RateLimit.AdminWindow = time.Duration(config.RateLimit.AdminWindow) * time.Second
}
