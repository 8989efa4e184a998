package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainErr "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/config"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"record not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, domainErr.ErrTransientConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, domainErr.ErrTransientConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domainErr.ErrConstraintViolation},
		{"check violation", &pgconn.PgError{Code: "23514"}, domainErr.ErrConstraintViolation},
		{"deadline", context.DeadlineExceeded, domainErr.ErrDatabaseConnection},
		{"cancelled", context.Canceled, context.Canceled},
		{"unknown", errors.New("strange"), domainErr.ErrInternalServer},
		{"domain error passes through", domainErr.ErrLinkNotFound, domainErr.ErrLinkNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tt.err, "op"), tt.target)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "op"))
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, isTransientError(fmt.Errorf("%w: x", domainErr.ErrTransientConflict)))
	assert.True(t, isTransientError(&pgconn.PgError{Code: "40001"}))
	assert.False(t, isTransientError(context.Canceled))
	assert.False(t, isTransientError(&pgconn.PgError{Code: "23505"}), "duplicates are never retried")
	assert.False(t, isTransientError(domainErr.ErrInsufficientBalance))
}

func TestRetryOnTransientError_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := RetryOnTransientError(ctx, RetryConfig{MaxRetries: 5, RetryInterval: 50 * time.Millisecond, MaxInterval: time.Second},
		func() error {
			calls++
			cancel()
			return domainErr.ErrTransientConflict
		}, newSilentLogger())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestConfig_DSN(t *testing.T) {
	sqliteConf := DefaultConfig()
	sqliteConf.Driver = DriverSQLite
	sqliteConf.SQLitePath = "data/ledger.db"
	assert.Equal(t, "data/ledger.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteConf.DSN())

	sqliteConf.SQLitePath = "file:x?mode=memory"
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteConf.DSN())

	pgConf := DefaultConfig()
	pgConf.Host, pgConf.Username, pgConf.Password, pgConf.Database = "db", "app", "secret", "ledger"
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=ledger sslmode=disable", pgConf.DSN())
	require.NoError(t, pgConf.Validate())

	pgConf.SSLMode = "sometimes"
	assert.Error(t, pgConf.Validate())

	bad := DefaultConfig()
	bad.Driver = "mysql"
	assert.Error(t, bad.Validate())
}

func TestFromAppConfig(t *testing.T) {
	app := &config.Config{
		Database: config.DatabaseConfig{
			Driver:          "postgres",
			Host:            "db",
			Port:            "6543",
			Username:        "app",
			Database:        "ledger",
			MaxOpenConns:    40,
			ConnMaxLifetime: 3 * time.Minute,
			RetryDelay:      2 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "debug"},
	}

	conf := FromAppConfig(app)
	assert.Equal(t, 6543, conf.Port)
	assert.Equal(t, 40, conf.MaxOpenConns)
	assert.Equal(t, 10, conf.MaxIdleConns, "unset values keep their defaults")
	assert.Equal(t, 3*time.Minute, conf.ConnMaxLifetime)
	assert.Equal(t, 2*time.Second, conf.RetryDelay)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 0, ParsePort("not-a-port"))
}

func TestExtractStatementLabels(t *testing.T) {
	tests := []struct {
		sql       string
		queryType string
		table     string
	}{
		{`SELECT * FROM "users" WHERE id = 'u-1'`, "SELECT", "users"},
		{`INSERT INTO "transactions" ("id") VALUES ('x') ON CONFLICT DO NOTHING`, "INSERT", "transactions"},
		{`UPDATE "users" SET "balance"=balance - 5 WHERE id = 'u-1' AND balance >= 5`, "UPDATE", "users"},
		{`DELETE FROM rate_limit_counters WHERE expires_at_ms < 5`, "DELETE", "rate_limit_counters"},
		{`PRAGMA foreign_keys`, "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.queryType, extractQueryType(tt.sql), tt.sql)
		assert.Equal(t, tt.table, extractTableName(tt.sql), tt.sql)
	}
}

func TestQueryMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewQueryMetrics(reg)

	metrics.Observe("SELECT", "users", 3*time.Millisecond, nil)
	metrics.Observe("SELECT", "users", time.Millisecond, gorm.ErrRecordNotFound)
	metrics.Observe("UPDATE", "users", time.Millisecond, errors.New("locked"))

	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.failures.WithLabelValues("SELECT", "users")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.failures.WithLabelValues("UPDATE", "users")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.duration))

	var nilMetrics *QueryMetrics
	assert.NotPanics(t, func() { nilMetrics.Observe("SELECT", "users", time.Millisecond, nil) })
}

func TestConnectionPoolMonitor_Register(t *testing.T) {
	db := NewTestDB(t, newTestClock())
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)

	monitor := NewConnectionPoolMonitor(sqlDB, newSilentLogger())
	reg := prometheus.NewRegistry()
	require.NoError(t, monitor.Register(reg, "sqlite"))

	monitor.Start(time.Hour)
	defer monitor.Stop()

	assert.Equal(t, 1, monitor.GetMetrics().MaxOpenConnections)
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	monitor.Stop()
}

func newSilentLogger() *logger.NoopLogger {
	return logger.NewNoopLogger().(*logger.NoopLogger)
}

func newTestClock() *timeprovider.FixedTimeProvider {
	return timeprovider.NewFixedTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}
