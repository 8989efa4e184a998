package database

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/logger"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// TestDB is a migrated in-memory SQLite database private to one test
type TestDB struct {
	Manager      *Manager
	DB           *gorm.DB
	UnitOfWork   *UnitOfWork
	TimeProvider coreport.TimeProvider
}

// NewTestDB opens and migrates a fresh in-memory SQLite database. It is
// closed when the test finishes.
func NewTestDB(t testing.TB, timeProvider coreport.TimeProvider) *TestDB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conf := DefaultConfig()
	conf.Driver = DriverSQLite
	conf.SQLitePath = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDBSeq.Add(1))
	conf.LogLevel = "silent"
	conf.RetryAttempts = 1

	log := logger.NewNoopLogger()
	manager := NewManager(conf, log, timeProvider, nil)

	ctx := context.Background()
	db, err := manager.Connect(ctx)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	if err := manager.MigrationManager().MigrateAll(ctx); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		Manager:      manager,
		DB:           db,
		UnitOfWork:   NewUnitOfWork(db, log, timeProvider).(*UnitOfWork),
		TimeProvider: timeProvider,
	}
}
