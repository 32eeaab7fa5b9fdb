package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

func testProduct(name string) catalog.Product {
	return catalog.Product{ID: "2", Name: name, BasePrice: money.MustParse("3.00")}
}

func newTestStore() *Store {
	return NewStore(&SequenceGenerator{})
}

func TestAddFreezesUnitPrice(t *testing.T) {
	s := newTestStore()

	c := catalog.Customization{
		Volume:    catalog.Volume450,
		Ristretto: catalog.RistrettoOne,
		Takeaway:  true,
	}

	line, err := s.Add(testProduct("Cappuccino"), 2, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if money.Format(line.UnitPrice) != "3.80" {
		t.Fatalf("expected unit price 3.80, got %s", money.Format(line.UnitPrice))
	}
	if money.Format(line.Total()) != "7.60" {
		t.Fatalf("expected line total 7.60, got %s", money.Format(line.Total()))
	}
	if money.Format(s.Total()) != "7.60" {
		t.Fatalf("expected cart total 7.60, got %s", money.Format(s.Total()))
	}
}

func TestAddRejectsInvalidQuantity(t *testing.T) {
	s := newTestStore()

	_, err := s.Add(testProduct("Latte"), 0, catalog.DefaultCustomization())
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if !s.Empty() {
		t.Fatal("rejected add must not change the cart")
	}
}

func TestAddRejectsUnknownOption(t *testing.T) {
	s := newTestStore()

	bad := catalog.Customization{Volume: 550, Ristretto: catalog.RistrettoOne}
	_, err := s.Add(testProduct("Latte"), 1, bad)
	if !errors.Is(err, catalog.ErrUnrecognizedOption) {
		t.Fatalf("expected ErrUnrecognizedOption, got %v", err)
	}
}

// Total must equal the sum of remaining lines after every step of any
// add/remove sequence.
func TestTotalTracksMutations(t *testing.T) {
	s := newTestStore()
	def := catalog.DefaultCustomization()

	l1, _ := s.Add(testProduct("Americano"), 1, def)
	l2, _ := s.Add(testProduct("Raf"), 3, def)

	assertTotal := func() {
		t.Helper()
		want := decimal.Zero
		for _, l := range s.Lines() {
			want = want.Add(l.Total())
		}
		if !s.Total().Equal(want) {
			t.Fatalf("total %s != sum of lines %s", s.Total(), want)
		}
	}

	assertTotal()
	if err := s.SetQuantity(l2.ID, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTotal()
	if err := s.Remove(l1.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTotal()

	if money.Format(s.Total()) != "6.00" {
		t.Fatalf("expected 6.00, got %s", money.Format(s.Total()))
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore()
	def := catalog.DefaultCustomization()

	line, _ := s.Add(testProduct("Espresso"), 1, def)

	if err := s.Remove(line.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := s.Lines()

	if err := s.Remove(line.ID); err != nil {
		t.Fatalf("second remove errored: %v", err)
	}
	if !SameLines(after, s.Lines()) {
		t.Fatal("second remove changed the cart")
	}
}

func TestRemoveUnknownIDLeavesCartUnchanged(t *testing.T) {
	s := newTestStore()
	def := catalog.DefaultCustomization()

	s.Add(testProduct("Americano"), 1, def)
	s.Add(testProduct("Latte"), 1, def)
	before := s.Lines()

	if err := s.Remove("nonexistent-id"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !SameLines(before, s.Lines()) {
		t.Fatal("cart changed after removing a nonexistent id")
	}
}

func TestSetQuantityZeroNotSupported(t *testing.T) {
	s := newTestStore()
	line, _ := s.Add(testProduct("Latte"), 2, catalog.DefaultCustomization())

	if err := s.SetQuantity(line.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if s.Lines()[0].Quantity != 2 {
		t.Fatal("quantity changed by rejected update")
	}
}

func TestMutationsRejectedDuringCheckout(t *testing.T) {
	s := newTestStore()
	line, _ := s.Add(testProduct("Latte"), 1, catalog.DefaultCustomization())

	if err := s.BeginCheckout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.EndCheckout()

	if _, err := s.Add(testProduct("Raf"), 1, catalog.DefaultCustomization()); !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("expected ErrCheckoutInProgress on add, got %v", err)
	}
	if err := s.Remove(line.ID); !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("expected ErrCheckoutInProgress on remove, got %v", err)
	}
	if err := s.SetQuantity(line.ID, 2); !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("expected ErrCheckoutInProgress on set quantity, got %v", err)
	}
	if err := s.BeginCheckout(); !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("expected ErrCheckoutInProgress on second checkout, got %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore()
	s.Add(testProduct("Cappuccino"), 2, catalog.Customization{
		Volume:    catalog.Volume450,
		Ristretto: catalog.RistrettoTwo,
		Takeaway:  true,
		Assemblage: &catalog.Assemblage{
			CoffeeType: catalog.CoffeeArabica,
			RoastLevel: 2,
			Milk:       catalog.MilkSkimmed,
			Syrup:      catalog.SyrupCaramel,
			Additives:  []catalog.Additive{catalog.AdditiveWhippedCream},
		},
	})

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	restored := newTestStore()
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if !SameLines(s.Lines(), restored.Lines()) {
		t.Fatal("restored cart differs from original")
	}
	if !s.Total().Equal(restored.Total()) {
		t.Fatalf("restored total %s != original %s", restored.Total(), s.Total())
	}
}
