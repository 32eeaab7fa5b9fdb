package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/kvstore"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

func newManager(store kvstore.Store) *Manager {
	return NewManager(store, &cart.SequenceGenerator{}, zap.NewNop())
}

func latte() catalog.Product {
	return catalog.Product{ID: "3", Name: "Latte", BasePrice: money.MustParse("3.00")}
}

func TestGetCreatesOneSessionPerUser(t *testing.T) {
	m := newManager(kvstore.NewMemoryStore())
	ctx := context.Background()

	s1, err := m.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := m.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 != s2 {
		t.Fatal("same user resolved to different sessions")
	}

	other, _ := m.Get(ctx, "u2")
	if other == s1 {
		t.Fatal("different users share a session")
	}
}

// blockingStore stalls Get for one user until released; other keys pass
// straight through to the backing store.
type blockingStore struct {
	kvstore.Store
	blockPrefix string
	release     chan struct{}
}

func (s *blockingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if strings.HasPrefix(key, s.blockPrefix) {
		<-s.release
	}
	return s.Store.Get(ctx, key)
}

func TestSlowRestoreBlocksOnlyThatUser(t *testing.T) {
	store := &blockingStore{
		Store:       kvstore.NewMemoryStore(),
		blockPrefix: "cart:slow",
		release:     make(chan struct{}),
	}
	m := newManager(store)
	ctx := context.Background()

	slowDone := make(chan struct{})
	go func() {
		m.Get(ctx, "slow")
		close(slowDone)
	}()

	// The other user's first request must complete while "slow" is stuck
	// in its restore.
	fastDone := make(chan struct{})
	go func() {
		if _, err := m.Get(ctx, "fast"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		close(fastDone)
	}()

	select {
	case <-fastDone:
	case <-time.After(2 * time.Second):
		t.Fatal("unrelated session blocked behind a slow restore")
	}

	close(store.release)
	<-slowDone
}

// failingStore errors a fixed number of times, then recovers.
type failingStore struct {
	kvstore.Store
	failures int
}

func (s *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failures > 0 {
		s.failures--
		return "", false, errors.New("connection reset")
	}
	return s.Store.Get(ctx, key)
}

func TestFailedRestoreRetriesOnNextGet(t *testing.T) {
	m := newManager(&failingStore{Store: kvstore.NewMemoryStore(), failures: 1})
	ctx := context.Background()

	if _, err := m.Get(ctx, "u1"); err == nil {
		t.Fatal("expected restore error")
	}
	if _, err := m.Get(ctx, "u1"); err != nil {
		t.Fatalf("second attempt should retry the restore: %v", err)
	}
}

func TestSaveAndRestoreAcrossRestart(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	m := newManager(store)
	s, _ := m.Get(ctx, "u1")
	if _, err := s.Cart.Add(latte(), 2, catalog.DefaultCustomization()); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	s.Ledger.Accrue("Latte", accrualTime())
	if err := m.Save(ctx, s); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// A new manager over the same store simulates a process restart.
	restarted := newManager(store)
	restored, err := restarted.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if got := len(restored.Cart.Lines()); got != 1 {
		t.Fatalf("expected 1 restored line, got %d", got)
	}
	if money.Format(restored.Cart.Total()) != "6.00" {
		t.Fatalf("expected restored total 6.00, got %s", money.Format(restored.Cart.Total()))
	}
	if restored.Ledger.Cups() != 1 {
		t.Fatalf("expected 1 restored cup, got %d", restored.Ledger.Cups())
	}
}
