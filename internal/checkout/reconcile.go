package checkout

import (
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/orders"
)

// Reconcile repairs the one gap in checkout atomicity: a crash between
// appending the order and clearing the cart. If the latest recorded order
// is content-equal to the surviving cart, the order already committed —
// clear the cart instead of letting a later checkout duplicate it.
// Safe to run on every session restore; a clean state is a no-op.
func Reconcile(cartStore *cart.Store, history *orders.History) bool {
	latest, ok := history.Latest()
	if !ok || cartStore.Empty() {
		return false
	}
	if !cart.SameLines(latest.Lines, cartStore.Lines()) {
		return false
	}
	cartStore.Clear()
	return true
}
