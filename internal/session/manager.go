// Package session gives each authenticated user exactly one owned set of
// stores: cart, order history and loyalty ledger. Ownership is explicit —
// collaborators receive the session handle instead of looking state up
// through ambient globals.
package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/checkout"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/kvstore"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/loyalty"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/orders"
)

type Session struct {
	UserID  string
	Cart    *cart.Store
	History *orders.History
	Ledger  *loyalty.Ledger
}

// entry latches the one-time restore of a user's session so concurrent
// first requests for the same user share a single load, while restores for
// different users never wait on each other.
type entry struct {
	once sync.Once
	s    *Session
	err  error
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	store    kvstore.Store
	ids      cart.IDGenerator
	logger   *zap.Logger
}

func NewManager(store kvstore.Store, ids cart.IDGenerator, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		store:    store,
		ids:      ids,
		logger:   logger,
	}
}

// Get returns the user's session, creating and restoring it on first touch.
// Restore runs checkout reconciliation, so a cart that already committed as
// an order comes back empty. The manager lock is held only for the map
// lookup; slow store I/O blocks callers for this user alone.
func (m *Manager) Get(ctx context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	e, ok := m.sessions[userID]
	if !ok {
		e = &entry{}
		m.sessions[userID] = e
	}
	m.mu.Unlock()

	e.once.Do(func() {
		e.s, e.err = m.load(ctx, userID)
	})

	if e.err != nil {
		// Drop the failed entry so the next request retries the restore.
		m.mu.Lock()
		if m.sessions[userID] == e {
			delete(m.sessions, userID)
		}
		m.mu.Unlock()
		return nil, e.err
	}
	return e.s, nil
}

func (m *Manager) load(ctx context.Context, userID string) (*Session, error) {
	s := &Session{
		UserID:  userID,
		Cart:    cart.NewStore(m.ids),
		History: orders.NewHistory(),
		Ledger:  loyalty.NewLedger(),
	}

	if err := m.restore(ctx, s); err != nil {
		return nil, err
	}

	if checkout.Reconcile(s.Cart, s.History) {
		m.logger.Info("reconciled interrupted checkout",
			zap.String("user_id", userID))
		// Persist the repaired cart so the next restore is clean.
		if err := m.saveCart(ctx, s); err != nil {
			m.logger.Error("failed to persist reconciled cart",
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}

	return s, nil
}

func (m *Manager) restore(ctx context.Context, s *Session) error {
	if snap, ok, err := m.store.Get(ctx, cartKey(s.UserID)); err != nil {
		return fmt.Errorf("restore cart: %w", err)
	} else if ok {
		if err := s.Cart.Restore(snap); err != nil {
			return fmt.Errorf("restore cart: %w", err)
		}
	}

	if snap, ok, err := m.store.Get(ctx, ordersKey(s.UserID)); err != nil {
		return fmt.Errorf("restore orders: %w", err)
	} else if ok {
		if err := s.History.Restore(snap); err != nil {
			return fmt.Errorf("restore orders: %w", err)
		}
	}

	if snap, ok, err := m.store.Get(ctx, loyaltyKey(s.UserID)); err != nil {
		return fmt.Errorf("restore loyalty: %w", err)
	} else if ok {
		if err := s.Ledger.Restore(snap); err != nil {
			return fmt.Errorf("restore loyalty: %w", err)
		}
	}

	return nil
}

// Save snapshots every store of the session to the key-value backend.
// Called after each mutating operation; best-effort durability.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if err := m.saveCart(ctx, s); err != nil {
		return err
	}

	snap, err := s.History.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot orders: %w", err)
	}
	if err := m.store.Set(ctx, ordersKey(s.UserID), snap); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}

	snap, err = s.Ledger.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot loyalty: %w", err)
	}
	if err := m.store.Set(ctx, loyaltyKey(s.UserID), snap); err != nil {
		return fmt.Errorf("save loyalty: %w", err)
	}

	return nil
}

func (m *Manager) saveCart(ctx context.Context, s *Session) error {
	snap, err := s.Cart.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot cart: %w", err)
	}
	if err := m.store.Set(ctx, cartKey(s.UserID), snap); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func cartKey(userID string) string    { return "cart:" + userID }
func ordersKey(userID string) string  { return "orders:" + userID }
func loyaltyKey(userID string) string { return "loyalty:" + userID }
