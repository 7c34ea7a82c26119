package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stonevault-backend/internal/models"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Get returns the user's cart lines with live stone data attached —
// price and stock reflect the current catalog, not a snapshot.
func (s *CartService) Get(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Preload("Stone").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return items, nil
}

// Add puts qty of a stone in the cart as one atomic conditional write:
// the unique (user_id, stone_id) index turns a second add into a
// quantity increment, so concurrent adds cannot double-insert or lose
// an increment.
func (s *CartService) Add(userID, stoneID uint, qty int) (*models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}

	var stone models.Stone
	if err := s.db.Select("id").First(&stone, "id = ?", stoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoneNotFound
		}
		return nil, fmt.Errorf("failed to fetch stone: %w", err)
	}

	item := models.CartItem{UserID: userID, StoneID: stoneID, Quantity: qty}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "stone_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", qty),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	// Re-read: on the conflict path the in-memory item does not carry
	// the incremented quantity.
	var saved models.CartItem
	if err := s.db.Where("user_id = ? AND stone_id = ?", userID, stoneID).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to reload cart item: %w", err)
	}
	return &saved, nil
}

// Update overwrites the quantity of an existing cart line. No stock
// clamping happens here; the storefront UI is expected to clamp.
func (s *CartService) Update(userID, stoneID uint, qty int) (*models.CartItem, error) {
	result := s.db.Model(&models.CartItem{}).
		Where("user_id = ? AND stone_id = ?", userID, stoneID).
		Updates(map[string]interface{}{"quantity": qty, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrCartItemNotFound
	}

	var saved models.CartItem
	if err := s.db.Where("user_id = ? AND stone_id = ?", userID, stoneID).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to reload cart item: %w", err)
	}
	return &saved, nil
}

// Remove deletes a cart line. Removing an absent stone is a no-op.
func (s *CartService) Remove(userID, stoneID uint) error {
	return s.db.Where("user_id = ? AND stone_id = ?", userID, stoneID).
		Delete(&models.CartItem{}).Error
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
