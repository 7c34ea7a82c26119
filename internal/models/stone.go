package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var StoneTypes = []string{"DIAMOND", "RUBY", "SAPPHIRE", "EMERALD", "AMETHYST", "CITRINE", "QUARTZ", "OTHER"}

// Stone is a catalog item. Images holds a JSON array of public URLs
// under the uploads path.
type Stone struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"size:255;not null" json:"name"`
	Slug        string                      `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Type        string                      `gorm:"size:20;not null;index" json:"type"`
	Color       string                      `gorm:"size:100;not null" json:"color"`
	Weight      decimal.Decimal             `gorm:"type:numeric(10,2);not null" json:"weight"`
	Origin      string                      `gorm:"size:255;not null" json:"origin"`
	ShortInfo   string                      `gorm:"type:text;not null" json:"shortInfo"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal             `gorm:"type:numeric(10,2);not null" json:"price"`
	Currency    string                      `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Stock       int                         `gorm:"not null;default:0" json:"stock"`
	Images      datatypes.JSONSlice[string] `gorm:"not null" json:"images"`
	IsFeatured  bool                        `gorm:"not null;default:false;index" json:"isFeatured"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func ValidStoneType(t string) bool {
	for _, v := range StoneTypes {
		if v == t {
			return true
		}
	}
	return false
}
