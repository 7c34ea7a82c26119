package models

import "time"

// Address is a delivery address. At most one address per user carries
// IsDefault; the address service clears competing defaults in the same
// transaction that sets a new one.
type Address struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	FullName   string    `gorm:"size:255;not null" json:"fullName"`
	Phone      string    `gorm:"size:50;not null" json:"phone"`
	Line1      string    `gorm:"size:255;not null" json:"line1"`
	Line2      *string   `gorm:"size:255" json:"line2"`
	City       string    `gorm:"size:100;not null" json:"city"`
	State      string    `gorm:"size:100;not null" json:"state"`
	PostalCode string    `gorm:"size:20;not null" json:"postalCode"`
	Country    string    `gorm:"size:100;not null" json:"country"`
	IsDefault  bool      `gorm:"not null;default:false" json:"isDefault"`
	CreatedAt  time.Time `json:"created_at"`
}
