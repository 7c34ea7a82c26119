package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderPending   = "PENDING"
	OrderPaid      = "PAID"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// Order is immutable once created except for Status. Monetary amounts
// are the values submitted at checkout, not derived from the catalog.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Status      string          `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	ShippingFee decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"shippingFee"`
	Total       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	PaymentRef  *string         `gorm:"size:255" json:"paymentRef"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// OrderItem snapshots unit price and line total at purchase time, so
// later catalog price changes never alter historical orders.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	StoneID   uint            `gorm:"not null" json:"stone_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unitPrice"`
	LineTotal decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"lineTotal"`

	Stone *Stone `gorm:"foreignKey:StoneID" json:"stone,omitempty"`
}

// orderTransitions is the allowed status state machine. DELIVERED and
// CANCELLED are terminal.
var orderTransitions = map[string][]string{
	OrderPending: {OrderPaid, OrderCancelled},
	OrderPaid:    {OrderShipped, OrderCancelled},
	OrderShipped: {OrderDelivered, OrderCancelled},
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
