package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stonevault-backend/internal/models"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// Get returns the wishlist with stone data, newest first.
func (s *WishlistService) Get(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := s.db.Preload("Stone").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	return items, nil
}

// Add is idempotent: the unique (user_id, stone_id) index plus DO
// NOTHING means a duplicate add returns the existing row unchanged.
func (s *WishlistService) Add(userID, stoneID uint) (*models.WishlistItem, error) {
	var stone models.Stone
	if err := s.db.Select("id").First(&stone, "id = ?", stoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoneNotFound
		}
		return nil, fmt.Errorf("failed to fetch stone: %w", err)
	}

	item := models.WishlistItem{UserID: userID, StoneID: stoneID}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "stone_id"}},
		DoNothing: true,
	}).Create(&item).Error
	if err != nil {
		return nil, fmt.Errorf("failed to add to wishlist: %w", err)
	}

	var saved models.WishlistItem
	if err := s.db.Where("user_id = ? AND stone_id = ?", userID, stoneID).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to reload wishlist item: %w", err)
	}
	return &saved, nil
}

// Remove deletes the pair if present; absent pairs are a no-op.
func (s *WishlistService) Remove(userID, stoneID uint) error {
	return s.db.Where("user_id = ? AND stone_id = ?", userID, stoneID).
		Delete(&models.WishlistItem{}).Error
}
