package database

import (
	"context"
	"fmt"
	"time"

	domainErr "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/database/migration"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
	registerer        prometheus.Registerer
	queryMetrics      *QueryMetrics
}

// NewManager creates a new database manager. reg receives query and pool
// metrics; it may be nil.
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, reg prometheus.Registerer) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
		registerer:   reg,
		queryMetrics: NewQueryMetrics(reg),
	}
}

func (m *Manager) dialector() (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(m.config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(m.config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// Connect establishes the database connection and configures the pool
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var gormDB *gorm.DB
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(m.config.RetryDelay):
			}
		}

		gormDB, err = gorm.Open(dialector, &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.config.LogLevel, m.queryMetrics),
			NowFunc: func() time.Time {
				return m.timeProvider.Now()
			},
			TranslateError: true,
			PrepareStmt:    m.config.Driver == DriverPostgres,
		})
		if err == nil {
			err = m.ping(ctx, gormDB)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	maxOpen, maxIdle := m.config.MaxOpenConns, m.config.MaxIdleConns
	if m.config.Driver == DriverSQLite {
		// SQLite allows a single writer; one connection keeps transactions
		// from failing with SQLITE_BUSY
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":          m.config.Driver,
		"host":            m.config.Host,
		"name":            m.config.Database,
		"max_open_conns":  maxOpen,
		"max_idle_conns":  maxIdle,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger)
	if m.registerer != nil {
		if err := m.connectionMonitor.Register(m.registerer, m.config.Driver); err != nil {
			m.logger.Warn("Failed to register connection pool metrics", map[string]any{"error": err.Error()})
		}
	}
	m.connectionMonitor.Start(30 * time.Second)

	return m.db, nil
}

func (m *Manager) ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Ping checks the database is reachable
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("%w: not connected", domainErr.ErrDatabaseConnection)
	}
	if err := m.ping(ctx, m.db); err != nil {
		return m.errorMapper.MapError(err, "ping")
	}
	return nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// MigrationManager returns the migration manager; nil before Connect
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}

// PoolMetrics returns the latest connection pool snapshot
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}
