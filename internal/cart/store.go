package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/pricing"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// Store owns the mutable line-item collection for one user session.
// While a checkout is awaiting payment authorization the store is locked
// and every mutating call is rejected with ErrCheckoutInProgress.
type Store struct {
	mu     sync.Mutex
	lines  []Line
	ids    IDGenerator
	locked bool
}

func NewStore(ids IDGenerator) *Store {
	return &Store{ids: ids}
}

// Add constructs a line with a fresh id and a unit price frozen at add time.
func (s *Store) Add(p catalog.Product, quantity int, c catalog.Customization) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if err := c.Validate(); err != nil {
		return Line{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return Line{}, ErrCheckoutInProgress
	}

	line := Line{
		ID:            s.ids.NewID(),
		ProductID:     p.ID,
		ProductName:   p.Name,
		Quantity:      quantity,
		Customization: c,
		UnitPrice:     pricing.UnitPrice(p, c),
	}
	s.lines = append(s.lines, line)
	return line, nil
}

// Remove deletes the matching line. Removing an absent id is a no-op, not
// an error; swipe-to-delete callers may fire twice.
func (s *Store) Remove(lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return ErrCheckoutInProgress
	}

	for i, l := range s.lines {
		if l.ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetQuantity updates a line's quantity. n=0 is not supported; callers must
// use Remove.
func (s *Store) SetQuantity(lineID string, n int) error {
	if n < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return ErrCheckoutInProgress
	}

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = n
			return nil
		}
	}
	return nil
}

// Clear empties the cart unconditionally. Only the checkout commit path and
// startup reconciliation call this; it bypasses the checkout lock.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the current line sequence in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...)
}

func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Total is the sum of every line's frozen unit price times quantity.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Total())
	}
	return total
}

// BeginCheckout marks the store as locked for the duration of the payment
// authorization window. Returns ErrCheckoutInProgress if already locked.
func (s *Store) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return ErrCheckoutInProgress
	}
	s.locked = true
	return nil
}

// EndCheckout releases the checkout lock.
func (s *Store) EndCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = false
}
