package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonevault-backend/internal/models"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "2500.00")
	svc := NewWishlistService(db)

	first, err := svc.Add(user.ID, stone.ID)
	require.NoError(t, err)
	second, err := svc.Add(user.ID, stone.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWishlistAddUnknownStone(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	svc := NewWishlistService(db)

	_, err := svc.Add(user.ID, 999)
	assert.ErrorIs(t, err, ErrStoneNotFound)
}

func TestWishlistRemoveAbsentIsNoOp(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	svc := NewWishlistService(db)

	assert.NoError(t, svc.Remove(user.ID, 999))
}

func TestWishlistGetIncludesStone(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "2500.00")
	svc := NewWishlistService(db)

	_, err := svc.Add(user.ID, stone.ID)
	require.NoError(t, err)

	items, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Stone)
	assert.Equal(t, "blue-sapphire", items[0].Stone.Slug)
}
