package dto

type AddressRequest struct {
	FullName   string  `json:"fullName" validate:"required,max=255"`
	Phone      string  `json:"phone" validate:"required,max=50"`
	Line1      string  `json:"line1" validate:"required,max=255"`
	Line2      *string `json:"line2" validate:"omitempty,max=255"`
	City       string  `json:"city" validate:"required,max=100"`
	State      string  `json:"state" validate:"required,max=100"`
	PostalCode string  `json:"postalCode" validate:"required,max=20"`
	Country    string  `json:"country" validate:"required,max=100"`
	IsDefault  bool    `json:"isDefault"`
}
