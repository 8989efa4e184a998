package migration

import (
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage
// settings. SQLite databases skip it.
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// Admin stats sum settled purchases
		name: "idx_transactions_settled_purchases",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_settled_purchases
			ON transactions (created_at) INCLUDE (amount)
			WHERE kind = 'purchase' AND status = 'success'`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are
// logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []indexStatement{
		// Balance updates rewrite user rows constantly; leave room for HOT updates
		{name: "users fillfactor", sql: `ALTER TABLE users SET (fillfactor = 80)`},
		{name: "transactions fillfactor", sql: `ALTER TABLE transactions SET (fillfactor = 90)`},
		{name: "transactions user_id statistics", sql: `ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`},
	}
	for _, tweak := range tweaks {
		if err := m.db.Exec(tweak.sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": tweak.name,
				"error": err.Error(),
			})
		}
	}

	m.logger.Info("PostgreSQL performance tweaks applied", nil)
	return nil
}
