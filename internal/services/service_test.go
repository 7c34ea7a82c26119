package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stonevault-backend/internal/database"
	"stonevault-backend/internal/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every query on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Email:    email,
		Name:     "Test User",
		Password: "not-a-real-hash",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestStone(t *testing.T, db *gorm.DB, slug, price string) *models.Stone {
	t.Helper()
	stone := models.Stone{
		Name:        slug,
		Slug:        slug,
		Type:        "SAPPHIRE",
		Color:       "Blue",
		Weight:      decimal.RequireFromString("2.50"),
		Origin:      "Sri Lanka",
		ShortInfo:   "test stone",
		Description: "test stone",
		Price:       decimal.RequireFromString(price),
		Currency:    "USD",
		Stock:       5,
		Images:      []string{},
	}
	require.NoError(t, db.Create(&stone).Error)
	return &stone
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}
