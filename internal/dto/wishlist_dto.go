package dto

type AddWishlistItemRequest struct {
	StoneID uint `json:"stoneId" validate:"required"`
}
