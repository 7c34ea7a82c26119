package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest carries the checkout snapshot. Unit prices and
// totals are stored as submitted; the server validates shape only.
type CreateOrderRequest struct {
	Items       []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	ShippingFee decimal.Decimal  `json:"shippingFee"`
	Total       decimal.Decimal  `json:"total"`
	PaymentRef  *string          `json:"paymentRef" validate:"omitempty,max=255"`
}

type OrderItemInput struct {
	StoneID   uint            `json:"stoneId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
