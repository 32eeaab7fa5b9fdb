// Package checkout turns a cart into a confirmed order. The transition is
// all-or-nothing from the caller's point of view: either the order lands in
// history, the cart empties and loyalty accrues, or nothing changes at all.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/events"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/loyalty"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/orders"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/payment"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrAuthorizationFailed = errors.New("payment authorization failed")
)

// SalesRecorder receives a copy of every committed order for the admin
// sales dashboard. Recording is best-effort.
type SalesRecorder interface {
	RecordSale(ctx context.Context, order orders.Order) error
}

// Request carries the metadata the order screen collects before paying.
type Request struct {
	Address       string
	PaymentMethod string
}

// Result is a committed checkout: the new order and, if the loyalty card
// filled, the earned reward.
type Result struct {
	Order  orders.Order
	Reward *loyalty.FreeDrinkEarned
}

// Coordinator owns the checkout protocol for one user session.
type Coordinator struct {
	userID     string
	cart       *cart.Store
	history    *orders.History
	ledger     *loyalty.Ledger
	authorizer payment.Authorizer
	publisher  events.Publisher
	recorder   SalesRecorder
	logger     *zap.Logger
	ids        cart.IDGenerator
	now        func() time.Time
}

func NewCoordinator(
	userID string,
	cartStore *cart.Store,
	history *orders.History,
	ledger *loyalty.Ledger,
	authorizer payment.Authorizer,
	publisher events.Publisher,
	recorder SalesRecorder,
	logger *zap.Logger,
) *Coordinator {
	return &Coordinator{
		userID:     userID,
		cart:       cartStore,
		history:    history,
		ledger:     ledger,
		authorizer: authorizer,
		publisher:  publisher,
		recorder:   recorder,
		logger:     logger,
		ids:        cart.UUIDGenerator{},
		now:        time.Now,
	}
}

// WithIDGenerator overrides order id generation; tests use a sequence.
func (c *Coordinator) WithIDGenerator(ids cart.IDGenerator) *Coordinator {
	c.ids = ids
	return c
}

// WithClock overrides the commit timestamp source.
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

// Checkout runs the full protocol:
//  1. lock the cart and reject it if empty,
//  2. await authorization (the single suspend point),
//  3. on success commit order + clear cart + accrue loyalty.
//
// On any failure the cart, history and ledger are exactly as before the
// call; the caller retries by invoking Checkout again.
func (c *Coordinator) Checkout(ctx context.Context, req Request) (Result, error) {
	if err := c.cart.BeginCheckout(); err != nil {
		return Result{}, err
	}
	defer c.cart.EndCheckout()

	// Emptiness is checked under the checkout lock: a removal racing this
	// call must either land before the lock (seen here) or be rejected.
	lines := c.cart.Lines()
	if len(lines) == 0 {
		return Result{}, ErrEmptyCart
	}

	total := c.cart.Total()

	ok, err := c.authorizer.Authorize(ctx, total)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAuthorizationFailed, err)
	}
	if !ok {
		return Result{}, ErrAuthorizationFailed
	}

	order := orders.Order{
		ID:            c.ids.NewID(),
		UserID:        c.userID,
		Lines:         lines,
		Total:         total,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     c.now(),
	}

	c.history.Append(order)
	c.cart.Clear()
	reward := c.ledger.Accrue(primaryDrink(order), order.CreatedAt)

	c.afterCommit(ctx, order, reward)

	return Result{Order: order, Reward: reward}, nil
}

// afterCommit runs the best-effort side channels: event publishing and the
// sales log. Failures are logged, never surfaced; the order is already
// committed.
func (c *Coordinator) afterCommit(ctx context.Context, order orders.Order, reward *loyalty.FreeDrinkEarned) {
	if c.recorder != nil {
		if err := c.recorder.RecordSale(ctx, order); err != nil {
			c.logger.Error("failed to record sale",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}

	if c.publisher == nil {
		return
	}
	event := events.OrderCompletedEvent{
		EventID:      c.ids.NewID(),
		OrderID:      order.ID,
		UserID:       order.UserID,
		Total:        money.Format(order.Total),
		Currency:     money.Currency,
		ItemCount:    len(order.Lines),
		RewardEarned: reward != nil,
		Timestamp:    order.CreatedAt,
	}
	if err := c.publisher.PublishOrderCompleted(ctx, event); err != nil {
		c.logger.Error("failed to publish order event",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}
}

// primaryDrink names the accrual row on the loyalty card after the first
// line of the order.
func primaryDrink(o orders.Order) string {
	if len(o.Lines) == 0 {
		return ""
	}
	return o.Lines[0].ProductName
}
