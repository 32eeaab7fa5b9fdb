package orders

import (
	"encoding/json"
	"sync"
)

// History is the append-only order record for one user session.
// Orders are never updated or deleted by normal flow.
type History struct {
	mu     sync.Mutex
	orders []Order
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(o Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = append(h.orders, o)
}

// All returns the orders most-recent-first.
func (h *History) All() []Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Order, 0, len(h.orders))
	for i := len(h.orders) - 1; i >= 0; i-- {
		out = append(out, h.orders[i])
	}
	return out
}

// Latest returns the most recent order, or false if the history is empty.
func (h *History) Latest() (Order, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.orders) == 0 {
		return Order{}, false
	}
	return h.orders[len(h.orders)-1], true
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.orders)
}

func (h *History) Snapshot() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(h.orders)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (h *History) Restore(snapshot string) error {
	var orders []Order
	if err := json.Unmarshal([]byte(snapshot), &orders); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = orders
	return nil
}
