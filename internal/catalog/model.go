package catalog

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry. Created at startup, never mutated;
// the image URL is the only field an admin can replace.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	ImageURL  string          `json:"image_url"`
}
