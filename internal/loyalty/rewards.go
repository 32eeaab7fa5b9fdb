package loyalty

import "errors"

var ErrUnknownRewardDrink = errors.New("unknown reward drink")

// RewardDrink is a drink redeemable against accumulated points.
type RewardDrink struct {
	Name       string `json:"name"`
	CostPoints int    `json:"cost_points"`
}

// RewardCatalog is the fixed list shown in the redeem modal.
var RewardCatalog = []RewardDrink{
	{Name: "Espresso", CostPoints: 100},
	{Name: "Americano", CostPoints: 120},
	{Name: "Cappuccino", CostPoints: 150},
	{Name: "Flat White", CostPoints: 150},
	{Name: "Latte", CostPoints: 150},
}

// RedeemDrink looks the drink up in the catalog and deducts its cost.
func (l *Ledger) RedeemDrink(name string) (RewardDrink, error) {
	for _, d := range RewardCatalog {
		if d.Name == name {
			if err := l.Redeem(d.CostPoints); err != nil {
				return RewardDrink{}, err
			}
			return d, nil
		}
	}
	return RewardDrink{}, ErrUnknownRewardDrink
}
