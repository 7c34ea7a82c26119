package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/models"
)

func TestFAQsOrderedBySortOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	require.NoError(t, db.Create(&models.FAQ{Question: "second", Answer: "a", SortOrder: 2}).Error)
	require.NoError(t, db.Create(&models.FAQ{Question: "first", Answer: "a", SortOrder: 1}).Error)

	faqs, err := svc.FAQs()
	require.NoError(t, err)
	require.Len(t, faqs, 2)
	assert.Equal(t, "first", faqs[0].Question)
	assert.Equal(t, "second", faqs[1].Question)
}

func TestSaveContactMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	msg, err := svc.SaveContactMessage(&dto.ContactRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Is the sapphire still available?",
	})
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
