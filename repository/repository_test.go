package repository

import (
	"testing"

	"github.com/FookNaRak/ITFoodFlow/configs"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// in-memory DB มีอยู่แค่บน connection เดียว
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	return db
}

func strptr(s string) *string { return &s }
