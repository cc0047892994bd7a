package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jmercer/portfolio-site-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory SQLite is per-connection; keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.User{}))
	return db
}

func TestNew(t *testing.T) {
	db := New(newTestDB(t))

	require.NotNil(t, db.ProjectRepo())
	require.NotNil(t, db.UserRepo())
}
