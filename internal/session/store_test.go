package session

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stonevault-backend/internal/models"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Session{}))
	return NewStore(db, ttl), db
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	ident := &Identity{UserID: 7, Email: "alice@example.com", Name: "Alice", Role: models.RoleUser}
	sid, err := store.Create(ident)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	loaded, err := store.Get(sid)
	require.NoError(t, err)
	assert.Equal(t, ident.UserID, loaded.UserID)
	assert.Equal(t, ident.Email, loaded.Email)
	assert.Equal(t, ident.Role, loaded.Role)
	assert.False(t, loaded.IsAdmin())
}

func TestSessionIDsAreUnique(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	ident := &Identity{UserID: 1, Email: "a@example.com", Name: "A", Role: models.RoleUser}
	a, err := store.Create(ident)
	require.NoError(t, err)
	b, err := store.Create(ident)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestExpiredSessionIsGone(t *testing.T) {
	store, db := newTestStore(t, -time.Minute)

	ident := &Identity{UserID: 1, Email: "a@example.com", Name: "A", Role: models.RoleUser}
	sid, err := store.Create(ident)
	require.NoError(t, err)

	_, err = store.Get(sid)
	assert.ErrorIs(t, err, ErrNotFound)

	// The expired row is deleted on read.
	var count int64
	require.NoError(t, db.Model(&models.Session{}).Where("sid = ?", sid).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDestroyUnknownSIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	assert.NoError(t, store.Destroy("does-not-exist"))
}

func TestGetEmptySID(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	_, err := store.Get("")
	assert.ErrorIs(t, err, ErrNotFound)
}
