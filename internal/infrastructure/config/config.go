package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/usecase/pricing"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Payment     PaymentConfig   `mapstructure:"payment"`
	Pricing     PricingConfig   `mapstructure:"pricing"`
	Bonus       BonusConfig     `mapstructure:"bonus"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig configures bearer token verification
type AuthConfig struct {
	JWTSecret   string   `mapstructure:"jwtSecret"`
	Issuer      string   `mapstructure:"issuer"`
	AdminEmails []string `mapstructure:"adminEmails"`
}

// PaymentConfig configures the payment gateway client
type PaymentConfig struct {
	SecretKey   string        `mapstructure:"secretKey"`
	BaseURL     string        `mapstructure:"baseUrl"`
	CallbackURL string        `mapstructure:"callbackUrl"`
	Timeout     time.Duration `mapstructure:"timeout"` // seconds
}

// PricingConfig holds the credit price list
type PricingConfig struct {
	BasePrice          int64            `mapstructure:"basePrice"`
	ExtraPlatformPrice int64            `mapstructure:"extraPlatformPrice"`
	ExtraPagePrice     int64            `mapstructure:"extraPagePrice"`
	Multipliers        map[string]int64 `mapstructure:"multipliers"`
}

// BonusConfig holds the welcome bonus amount
type BonusConfig struct {
	Amount int64 `mapstructure:"amount"`
}

// RateLimitConfig bounds admin route usage per client address
type RateLimitConfig struct {
	AdminRequests int64         `mapstructure:"adminRequests"`
	AdminWindow   time.Duration `mapstructure:"adminWindow"` // seconds
}

// Table converts the configured prices into a pricing table, falling back to
// the built-in multipliers when none are configured
func (p PricingConfig) Table() pricing.Table {
	table := pricing.DefaultTable()
	if p.BasePrice > 0 {
		table.BasePrice = p.BasePrice
	}
	if p.ExtraPlatformPrice > 0 {
		table.ExtraPlatformPrice = p.ExtraPlatformPrice
	}
	if p.ExtraPagePrice > 0 {
		table.ExtraPagePrice = p.ExtraPagePrice
	}
	if len(p.Multipliers) > 0 {
		table.Multipliers = make(map[string]int64, len(p.Multipliers))
		for k, v := range p.Multipliers {
			table.Multipliers[strings.ToLower(k)] = v
		}
	}
	return table
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate checks settings the service cannot start without
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.Database == "" {
			problems = append(problems, "database.host and database.database are required for postgres")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			problems = append(problems, "database.sqlitePath is required for sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported database.driver %q", c.Database.Driver))
	}
	if len(c.Auth.JWTSecret) < 32 {
		problems = append(problems, "auth.jwtSecret must be at least 32 characters")
	}
	if c.IsProduction() && c.Payment.SecretKey == "" {
		problems = append(problems, "payment.secretKey is required in production")
	}
	if c.RateLimit.AdminRequests <= 0 || c.RateLimit.AdminWindow <= 0 {
		problems = append(problems, "rateLimit.adminRequests and rateLimit.adminWindow must be positive")
	}
	if err := c.Pricing.Table().Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
