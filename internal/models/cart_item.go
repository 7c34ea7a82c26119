package models

import "time"

// CartItem is one (user, stone) line in a cart. The unique index backs
// the upsert-on-add semantics: adding an already-carted stone increments
// quantity instead of inserting a second row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_stone" json:"user_id"`
	StoneID   uint      `gorm:"not null;uniqueIndex:idx_cart_user_stone" json:"stone_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Stone *Stone `gorm:"foreignKey:StoneID;constraint:OnDelete:CASCADE" json:"stone,omitempty"`
}
