package session

import (
	"context"
	"testing"
	"time"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/kvstore"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/orders"
)

func accrualTime() time.Time {
	return time.Date(2024, 6, 24, 12, 30, 0, 0, time.UTC)
}

// A crash between order-append and cart-clear leaves both snapshots holding
// the same lines. Restoring the session must treat the order as committed
// and come back with an empty cart.
func TestRestoreReconcilesInterruptedCheckout(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	m := newManager(store)
	s, _ := m.Get(ctx, "u1")
	if _, err := s.Cart.Add(latte(), 2, catalog.DefaultCustomization()); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	s.History.Append(orders.Order{
		ID:            "o1",
		UserID:        "u1",
		Lines:         s.Cart.Lines(),
		Total:         s.Cart.Total(),
		Address:       "LLC 1, 276 Thái Hà, quận Đống Đa, Hà Nội",
		PaymentMethod: orders.PaymentCard,
		CreatedAt:     accrualTime(),
	})
	// Persist with the cart NOT cleared: the interrupted state.
	if err := m.Save(ctx, s); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	restarted := newManager(store)
	restored, err := restarted.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if !restored.Cart.Empty() {
		t.Fatal("interrupted checkout was not reconciled")
	}
	if restored.History.Len() != 1 {
		t.Fatalf("history must keep the committed order, got %d", restored.History.Len())
	}

	// The repaired cart was persisted too: a second restart stays clean.
	again := newManager(store)
	final, err := again.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("second restore failed: %v", err)
	}
	if !final.Cart.Empty() {
		t.Fatal("reconciled cart came back after a second restart")
	}
}
