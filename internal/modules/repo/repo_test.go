package repo

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/projecttracker/tracker/internal/config"
	dbpkg "github.com/projecttracker/tracker/internal/infra/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB returns a migrated in-memory SQLite database. A single
// connection keeps every query on the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := dbpkg.Open(sqlite.Open(":memory:"), &config.Config{
		Database: config.DBCfg{AutoMigrate: true, MaxOpen: 1},
	})
	require.NoError(t, err)

	sqlDB, err := d.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return d
}

// setupMockPostgres returns a gorm handle speaking the Postgres dialect to
// sqlmock.
func setupMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	d, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return d, mock
}
