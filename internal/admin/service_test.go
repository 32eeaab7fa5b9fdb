package admin

import (
	"context"
	"testing"
	"time"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/kvstore"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/orders"
)

func soldOrder(id string, lines ...cart.Line) orders.Order {
	return orders.Order{
		ID:        id,
		UserID:    "u1",
		Lines:     lines,
		CreatedAt: time.Date(2024, 6, 24, 12, 30, 0, 0, time.UTC),
	}
}

func soldLine(name string, quantity int, unitPrice string) cart.Line {
	return cart.Line{
		ID:          name + "-line",
		ProductName: name,
		Quantity:    quantity,
		UnitPrice:   money.MustParse(unitPrice),
	}
}

func TestSummaryEmptyLog(t *testing.T) {
	s := NewService(kvstore.NewMemoryStore())

	rows, total, err := s.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 || !total.IsZero() {
		t.Fatalf("expected empty summary, got %d rows, total %s", len(rows), total)
	}
}

func TestRecordAndSummarize(t *testing.T) {
	s := NewService(kvstore.NewMemoryStore())
	ctx := context.Background()

	if err := s.RecordSale(ctx, soldOrder("o1",
		soldLine("Cappuccino", 2, "3.80"),
		soldLine("Espresso", 1, "3.00"),
	)); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := s.RecordSale(ctx, soldOrder("o2",
		soldLine("Cappuccino", 1, "3.50"),
	)); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	rows, total, err := s.Summary(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	// 2*3.80 + 1*3.00 + 1*3.50 = 14.10
	if money.Format(total) != "14.10" {
		t.Fatalf("expected total 14.10, got %s", money.Format(total))
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 product rows, got %d", len(rows))
	}
	if rows[0].ProductName != "Cappuccino" || rows[0].Quantity != 3 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if money.Format(rows[0].Revenue) != "11.10" {
		t.Fatalf("expected Cappuccino revenue 11.10, got %s", money.Format(rows[0].Revenue))
	}
}

func TestLogSurvivesRestart(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	s := NewService(store)
	s.RecordSale(ctx, soldOrder("o1", soldLine("Latte", 1, "3.00")))

	reopened := NewService(store)
	_, total, err := reopened.Summary(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if money.Format(total) != "3.00" {
		t.Fatalf("expected total 3.00 after restart, got %s", money.Format(total))
	}
}
