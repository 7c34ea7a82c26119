package models

import "time"

// WishlistItem is a unique (user, stone) pair; adding a duplicate is a
// no-op that returns the existing row.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_stone" json:"user_id"`
	StoneID   uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_stone" json:"stone_id"`
	CreatedAt time.Time `json:"created_at"`

	Stone *Stone `gorm:"foreignKey:StoneID;constraint:OnDelete:CASCADE" json:"stone,omitempty"`
}
