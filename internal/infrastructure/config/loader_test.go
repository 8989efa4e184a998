package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
  readTimeout: 3
database:
  driver: sqlite
  sqlitePath: /tmp/ledger.db
  connMaxLifetime: 2
auth:
  jwtSecret: 0123456789abcdef0123456789abcdef
pricing:
  basePrice: 5000
  multipliers:
    3d: 1
    1W: 2
rateLimit:
  adminRequests: 5
  adminWindow: 30
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileDefaultsAndDurations(t *testing.T) {
	t.Setenv("LL_ENV", "test")
	conf, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, Test, conf.Environment)
	assert.Equal(t, 9090, conf.Server.Port)
	assert.Equal(t, 3*time.Second, conf.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, conf.Server.WriteTimeout, "defaults fill unset keys")
	assert.Equal(t, 2*time.Minute, conf.Database.ConnMaxLifetime)
	assert.Equal(t, 30*time.Second, conf.RateLimit.AdminWindow)
	assert.Equal(t, int64(5), conf.RateLimit.AdminRequests)
	assert.Equal(t, int64(2000), conf.Bonus.Amount)

	table := conf.Pricing.Table()
	assert.Equal(t, int64(5000), table.BasePrice)
	assert.Equal(t, int64(2), table.Multipliers["1w"], "multiplier keys are case-insensitive")

	require.NoError(t, conf.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LL_DB_DRIVER", "postgres")
	t.Setenv("LL_DB_HOST", "db.internal")
	t.Setenv("LL_DB_NAME", "ledger")
	t.Setenv("LL_SERVER_PORT", "7070")
	t.Setenv("LL_DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("LL_AUTH_ADMIN_EMAILS", " root@example.com, ops@example.com ,")
	t.Setenv("LL_PAYMENT_SECRET_KEY", "sk_test_123")

	conf, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "postgres", conf.Database.Driver)
	assert.Equal(t, "db.internal", conf.Database.Host)
	assert.Equal(t, 7070, conf.Server.Port)
	assert.Equal(t, 25, conf.Database.MaxOpenConns, "unparsable numbers are ignored")
	assert.Equal(t, []string{"root@example.com", "ops@example.com"}, conf.Auth.AdminEmails)
	assert.Equal(t, "sk_test_123", conf.Payment.SecretKey)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Production,
			Server:      ServerConfig{Port: 8080},
			Database:    DatabaseConfig{Driver: "sqlite", SQLitePath: "x.db"},
			Auth:        AuthConfig{JWTSecret: "0123456789abcdef0123456789abcdef"},
			Payment:     PaymentConfig{SecretKey: "sk_live"},
			RateLimit:   RateLimitConfig{AdminRequests: 20, AdminWindow: time.Minute},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"postgres without host", func(c *Config) { c.Database.Driver = "postgres" }},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }},
		{"production without gateway key", func(c *Config) { c.Payment.SecretKey = "" }},
		{"zero rate limit", func(c *Config) { c.RateLimit.AdminRequests = 0 }},
		{"negative price", func(c *Config) { c.Pricing.Multipliers = map[string]int64{"1w": -1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
