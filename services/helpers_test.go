package services

import (
	"context"
	"testing"

	"hotel-reservation/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory database loaded with the demo data.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDatabase(&config.Config{DBDriver: "sqlite", SQLiteDSN: ":memory:", LogLevel: "error"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, NewDemoService(db, zap.NewNop()).Seed(context.Background()))
	return db
}
