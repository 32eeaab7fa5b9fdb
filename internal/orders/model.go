package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
)

// PaymentMethod is the tag recorded on a completed order.
const (
	PaymentCard      = "card"
	PaymentBiometric = "biometric"
)

// Order is an immutable record of a completed checkout: the line items as
// they stood at commit time, the computed total, and delivery metadata.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Lines         []cart.Line     `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}
