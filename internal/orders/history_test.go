package orders

import (
	"testing"
	"time"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

func testOrder(id string, at time.Time) Order {
	return Order{
		ID:            id,
		UserID:        "u1",
		Total:         money.MustParse("7.60"),
		Address:       "LLC 1, 276 Thái Hà, quận Đống Đa, Hà Nội",
		PaymentMethod: PaymentCard,
		CreatedAt:     at,
	}
}

func TestAllMostRecentFirst(t *testing.T) {
	h := NewHistory()
	base := time.Date(2024, 6, 24, 12, 30, 0, 0, time.UTC)

	h.Append(testOrder("a", base))
	h.Append(testOrder("b", base.Add(time.Hour)))
	h.Append(testOrder("c", base.Add(2*time.Hour)))

	all := h.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(all))
	}
	if all[0].ID != "c" || all[1].ID != "b" || all[2].ID != "a" {
		t.Fatalf("wrong order: %s %s %s", all[0].ID, all[1].ID, all[2].ID)
	}

	latest, ok := h.Latest()
	if !ok || latest.ID != "c" {
		t.Fatalf("expected latest c, got %v %v", latest.ID, ok)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	h := NewHistory()
	h.Append(testOrder("a", time.Date(2024, 6, 24, 12, 30, 0, 0, time.UTC)))
	h.Append(testOrder("b", time.Date(2024, 6, 25, 8, 15, 0, 0, time.UTC)))

	snap, err := h.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	restored := NewHistory()
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if restored.Len() != 2 {
		t.Fatalf("expected 2 orders, got %d", restored.Len())
	}
	latest, _ := restored.Latest()
	if latest.ID != "b" || !latest.Total.Equal(money.MustParse("7.60")) {
		t.Fatalf("restored latest mismatch: %+v", latest)
	}
}

func TestEmptyHistory(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Latest(); ok {
		t.Fatal("empty history reported a latest order")
	}
	if len(h.All()) != 0 {
		t.Fatal("empty history returned orders")
	}
}
