package catalog

import (
	"errors"
	"fmt"
)

var ErrUnrecognizedOption = errors.New("unrecognized option")

// Volume is the cup size in ml.
type Volume int

const (
	Volume250 Volume = 250
	Volume350 Volume = 350
	Volume450 Volume = 450
)

// Ristretto is the shot count.
type Ristretto string

const (
	RistrettoOne Ristretto = "one"
	RistrettoTwo Ristretto = "two"
)

type CoffeeType string

const (
	CoffeeArabica CoffeeType = "arabica"
	CoffeeRobusta CoffeeType = "robusta"
)

type Milk string

const (
	MilkNone        Milk = "none"
	MilkCow         Milk = "cow"
	MilkLactoseFree Milk = "lactose-free"
	MilkSkimmed     Milk = "skimmed"
	MilkVegetable   Milk = "vegetable"
)

type Syrup string

const (
	SyrupNone     Syrup = "none"
	SyrupAmaretto Syrup = "amaretto"
	SyrupCoconut  Syrup = "coconut"
	SyrupVanilla  Syrup = "vanilla"
	SyrupCaramel  Syrup = "caramel"
)

type Additive string

const (
	AdditiveCeylonCinnamon  Additive = "ceylon cinnamon"
	AdditiveGratedChocolate Additive = "grated chocolate"
	AdditiveLiquidChocolate Additive = "liquid chocolate"
	AdditiveMarshmallow     Additive = "marshmallow"
	AdditiveWhippedCream    Additive = "whipped cream"
	AdditiveCream           Additive = "cream"
	AdditiveNutmeg          Additive = "nutmeg"
	AdditiveIceCream        Additive = "ice cream"
)

// Assemblage is the extended build-your-own-drink option set.
// Every field contributes an independent additive price delta.
type Assemblage struct {
	CoffeeType CoffeeType `json:"coffee_type"`
	RoastLevel int        `json:"roast_level"` // 1..5
	IceLevel   int        `json:"ice_level"`   // 0 (none) .. 3 (a lot)
	Milk       Milk       `json:"milk"`
	Syrup      Syrup      `json:"syrup"`
	Additives  []Additive `json:"additives"`
}

// Customization is the value object attached to a cart line item.
type Customization struct {
	Volume     Volume      `json:"volume"`
	Ristretto  Ristretto   `json:"ristretto"`
	Takeaway   bool        `json:"takeaway"`
	Assemblage *Assemblage `json:"assemblage,omitempty"`
}

var (
	validVolumes = map[Volume]bool{
		Volume250: true,
		Volume350: true,
		Volume450: true,
	}
	validRistrettos = map[Ristretto]bool{
		RistrettoOne: true,
		RistrettoTwo: true,
	}
	validCoffeeTypes = map[CoffeeType]bool{
		CoffeeArabica: true,
		CoffeeRobusta: true,
	}
	validMilks = map[Milk]bool{
		MilkNone:        true,
		MilkCow:         true,
		MilkLactoseFree: true,
		MilkSkimmed:     true,
		MilkVegetable:   true,
	}
	validSyrups = map[Syrup]bool{
		SyrupNone:     true,
		SyrupAmaretto: true,
		SyrupCoconut:  true,
		SyrupVanilla:  true,
		SyrupCaramel:  true,
	}
	validAdditives = map[Additive]bool{
		AdditiveCeylonCinnamon:  true,
		AdditiveGratedChocolate: true,
		AdditiveLiquidChocolate: true,
		AdditiveMarshmallow:     true,
		AdditiveWhippedCream:    true,
		AdditiveCream:           true,
		AdditiveNutmeg:          true,
		AdditiveIceCream:        true,
	}
)

// Validate rejects any enumerated value outside its declared option set.
func (c Customization) Validate() error {
	if !validVolumes[c.Volume] {
		return fmt.Errorf("%w: volume %d", ErrUnrecognizedOption, c.Volume)
	}
	if !validRistrettos[c.Ristretto] {
		return fmt.Errorf("%w: ristretto %q", ErrUnrecognizedOption, c.Ristretto)
	}
	if c.Assemblage != nil {
		return c.Assemblage.validate()
	}
	return nil
}

func (a *Assemblage) validate() error {
	if !validCoffeeTypes[a.CoffeeType] {
		return fmt.Errorf("%w: coffee type %q", ErrUnrecognizedOption, a.CoffeeType)
	}
	if a.RoastLevel < 1 || a.RoastLevel > 5 {
		return fmt.Errorf("%w: roast level %d", ErrUnrecognizedOption, a.RoastLevel)
	}
	if a.IceLevel < 0 || a.IceLevel > 3 {
		return fmt.Errorf("%w: ice level %d", ErrUnrecognizedOption, a.IceLevel)
	}
	if !validMilks[a.Milk] {
		return fmt.Errorf("%w: milk %q", ErrUnrecognizedOption, a.Milk)
	}
	if !validSyrups[a.Syrup] {
		return fmt.Errorf("%w: syrup %q", ErrUnrecognizedOption, a.Syrup)
	}
	for _, add := range a.Additives {
		if !validAdditives[add] {
			return fmt.Errorf("%w: additive %q", ErrUnrecognizedOption, add)
		}
	}
	return nil
}

// Equal compares two customizations by value.
func (c Customization) Equal(o Customization) bool {
	if c.Volume != o.Volume || c.Ristretto != o.Ristretto || c.Takeaway != o.Takeaway {
		return false
	}
	switch {
	case c.Assemblage == nil && o.Assemblage == nil:
		return true
	case c.Assemblage == nil || o.Assemblage == nil:
		return false
	}
	a, b := c.Assemblage, o.Assemblage
	if a.CoffeeType != b.CoffeeType || a.RoastLevel != b.RoastLevel ||
		a.IceLevel != b.IceLevel || a.Milk != b.Milk || a.Syrup != b.Syrup {
		return false
	}
	if len(a.Additives) != len(b.Additives) {
		return false
	}
	for i := range a.Additives {
		if a.Additives[i] != b.Additives[i] {
			return false
		}
	}
	return true
}

// DefaultCustomization is what the order screen starts with:
// 350 ml, single ristretto, drink-in.
func DefaultCustomization() Customization {
	return Customization{
		Volume:    Volume350,
		Ristretto: RistrettoOne,
	}
}
