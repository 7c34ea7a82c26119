package dto

import "github.com/shopspring/decimal"

// StoneInput is the parsed multipart form for admin create/update.
// Images holds the final URL list (retained existing URLs plus newly
// uploaded ones, in that order).
type StoneInput struct {
	Name        string          `validate:"required,max=255"`
	Slug        string          `validate:"required,max=255"`
	Type        string          `validate:"required"`
	Color       string          `validate:"required,max=100"`
	Weight      decimal.Decimal `validate:"-"`
	Origin      string          `validate:"required,max=255"`
	ShortInfo   string          `validate:"required"`
	Description string          `validate:"required"`
	Price       decimal.Decimal `validate:"-"`
	Currency    string          `validate:"omitempty,len=3"`
	Stock       int             `validate:"min=0"`
	Images      []string        `validate:"-"`
	IsFeatured  bool
}

// StoneFilters are the catalog list query parameters. Nil/empty fields
// apply no predicate for that dimension.
type StoneFilters struct {
	Type     string
	Color    string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	Search   string
	Limit    int
	Offset   int
}
