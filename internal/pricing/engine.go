// Package pricing computes drink prices from a product's base price and the
// selected customization. All deltas are additive, so the result does not
// depend on the order options were chosen in, and all arithmetic is exact
// decimal — rounding to currency precision happens only at display.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

var (
	volumeDeltas = map[catalog.Volume]decimal.Decimal{
		catalog.Volume250: decimal.Zero,
		catalog.Volume350: decimal.Zero,
		catalog.Volume450: money.MustParse("0.50"),
	}

	takeawaySurcharge = money.MustParse("0.30")

	coffeeTypeDeltas = map[catalog.CoffeeType]decimal.Decimal{
		catalog.CoffeeArabica: money.MustParse("0.50"),
		catalog.CoffeeRobusta: money.MustParse("1.00"),
	}

	perRoastLevel = money.MustParse("0.20")
	perIceLevel   = money.MustParse("0.30")
	milkDelta     = money.MustParse("0.50")
	syrupDelta    = money.MustParse("0.50")
	perAdditive   = money.MustParse("0.30")
)

// UnitPrice returns base price + the sum of deltas for every selected option.
// The customization must already be validated; an unrecognized enumerated
// value is rejected at construction, not here.
func UnitPrice(p catalog.Product, c catalog.Customization) decimal.Decimal {
	price := p.BasePrice

	price = price.Add(volumeDeltas[c.Volume])
	if c.Takeaway {
		price = price.Add(takeawaySurcharge)
	}

	if a := c.Assemblage; a != nil {
		price = price.Add(coffeeTypeDeltas[a.CoffeeType])
		price = price.Add(perRoastLevel.Mul(decimal.NewFromInt(int64(a.RoastLevel))))
		price = price.Add(perIceLevel.Mul(decimal.NewFromInt(int64(a.IceLevel))))
		if a.Milk != catalog.MilkNone {
			price = price.Add(milkDelta)
		}
		if a.Syrup != catalog.SyrupNone {
			price = price.Add(syrupDelta)
		}
		price = price.Add(perAdditive.Mul(decimal.NewFromInt(int64(len(a.Additives)))))
	}

	return price
}
