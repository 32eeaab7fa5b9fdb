package cart

import (
	"github.com/shopspring/decimal"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
)

// Line is one product + customization + quantity entry in a cart.
// UnitPrice is a frozen quote: computed once when the line is added and
// never recomputed, even if catalog prices change later.
type Line struct {
	ID            string                `json:"id"`
	ProductID     string                `json:"product_id"`
	ProductName   string                `json:"product_name"`
	Quantity      int                   `json:"quantity"`
	Customization catalog.Customization `json:"customization"`
	UnitPrice     decimal.Decimal       `json:"unit_price"`
}

// Total is the frozen unit price times the quantity.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// equal compares two lines by content, not reference.
func (l Line) equal(o Line) bool {
	if l.ID != o.ID ||
		l.ProductID != o.ProductID ||
		l.ProductName != o.ProductName ||
		l.Quantity != o.Quantity ||
		!l.UnitPrice.Equal(o.UnitPrice) {
		return false
	}
	return l.Customization.Equal(o.Customization)
}

// SameLines reports whether two line sequences are content-equal,
// element by element, in order.
func SameLines(a, b []Line) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}
