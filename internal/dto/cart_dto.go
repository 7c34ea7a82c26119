package dto

type AddCartItemRequest struct {
	StoneID  uint `json:"stoneId" validate:"required"`
	Quantity int  `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
