// Package admin aggregates the sales log behind the dashboard: per-product
// quantity and revenue plus the running total.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/orders"
)

const salesKey = "sales:log"

// SaleRow is one sold line item as recorded at checkout.
type SaleRow struct {
	OrderID     string          `json:"order_id"`
	UserID      string          `json:"user_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	At          time.Time       `json:"at"`
}

// SalesStore is the slice of the key-value contract the sales log needs.
type SalesStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type Service struct {
	mu    sync.Mutex
	store SalesStore
}

func NewService(store SalesStore) *Service {
	return &Service{store: store}
}

// RecordSale appends every line of a committed order to the sales log.
// Implements checkout.SalesRecorder.
func (s *Service) RecordSale(ctx context.Context, order orders.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx)
	if err != nil {
		return err
	}

	for _, line := range order.Lines {
		rows = append(rows, SaleRow{
			OrderID:     order.ID,
			UserID:      order.UserID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			At:          order.CreatedAt,
		})
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal sales log: %w", err)
	}
	return s.store.Set(ctx, salesKey, string(data))
}

// ProductSummary is one dashboard row.
type ProductSummary struct {
	ProductName string
	Quantity    int
	Revenue     decimal.Decimal
}

// Summary totals the sales log: revenue = sum of quantity * unit price.
func (s *Service) Summary(ctx context.Context) ([]ProductSummary, decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	var names []string
	byProduct := make(map[string]*ProductSummary)
	total := decimal.Zero

	for _, row := range rows {
		revenue := row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
		total = total.Add(revenue)

		p, ok := byProduct[row.ProductName]
		if !ok {
			p = &ProductSummary{ProductName: row.ProductName}
			byProduct[row.ProductName] = p
			names = append(names, row.ProductName)
		}
		p.Quantity += row.Quantity
		p.Revenue = p.Revenue.Add(revenue)
	}

	out := make([]ProductSummary, 0, len(names))
	for _, name := range names {
		out = append(out, *byProduct[name])
	}
	return out, total, nil
}

func (s *Service) load(ctx context.Context) ([]SaleRow, error) {
	raw, ok, err := s.store.Get(ctx, salesKey)
	if err != nil {
		return nil, fmt.Errorf("load sales log: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var rows []SaleRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("decode sales log: %w", err)
	}
	return rows, nil
}
