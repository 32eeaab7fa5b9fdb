package loyalty

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	// CupsPerReward is the loyalty card capacity: the 8th cup earns a free drink.
	CupsPerReward = 8
	// PointsPerOrder is accrued per completed checkout, independent of order value.
	PointsPerOrder = 10
	// RewardBonusPoints is added when the card fills.
	RewardBonusPoints = 50
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrCorruptSnapshot    = errors.New("corrupt loyalty snapshot")
)

// FreeDrinkEarned fires exactly once each time the cup counter crosses
// capacity.
type FreeDrinkEarned struct {
	EarnedAt    time.Time `json:"earned_at"`
	BonusPoints int       `json:"bonus_points"`
}

// Accrual is one row of the rewards history shown on the loyalty card.
type Accrual struct {
	DrinkName string    `json:"drink_name"`
	Points    int       `json:"points"`
	At        time.Time `json:"at"`
}

// Ledger tracks one user's accumulated reward cups and points.
// Cups stay within 0..CupsPerReward-1; points never go negative.
type Ledger struct {
	mu       sync.Mutex
	cups     int
	points   int
	accruals []Accrual
	rewards  []FreeDrinkEarned
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Accrue records one completed order: +1 cup and +PointsPerOrder points.
// When the card fills it resets to 0 and the earned reward is returned;
// otherwise the return is nil.
func (l *Ledger) Accrue(drinkName string, at time.Time) *FreeDrinkEarned {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cups++
	l.points += PointsPerOrder
	l.accruals = append(l.accruals, Accrual{
		DrinkName: drinkName,
		Points:    PointsPerOrder,
		At:        at,
	})

	if l.cups < CupsPerReward {
		return nil
	}

	l.cups = 0
	l.points += RewardBonusPoints
	reward := FreeDrinkEarned{EarnedAt: at, BonusPoints: RewardBonusPoints}
	l.rewards = append(l.rewards, reward)
	return &reward
}

// Redeem deducts costPoints, failing without side effects if the balance
// is short.
func (l *Ledger) Redeem(costPoints int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.points < costPoints {
		return ErrInsufficientPoints
	}
	l.points -= costPoints
	return nil
}

func (l *Ledger) Cups() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cups
}

func (l *Ledger) Points() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.points
}

// Accruals returns the rewards history, most-recent-first.
func (l *Ledger) Accruals() []Accrual {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Accrual, 0, len(l.accruals))
	for i := len(l.accruals) - 1; i >= 0; i-- {
		out = append(out, l.accruals[i])
	}
	return out
}

func (l *Ledger) Rewards() []FreeDrinkEarned {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]FreeDrinkEarned(nil), l.rewards...)
}

type snapshot struct {
	Cups     int               `json:"cups"`
	Points   int               `json:"points"`
	Accruals []Accrual         `json:"accruals"`
	Rewards  []FreeDrinkEarned `json:"rewards"`
}

func (l *Ledger) Snapshot() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(snapshot{
		Cups:     l.cups,
		Points:   l.points,
		Accruals: l.accruals,
		Rewards:  l.rewards,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (l *Ledger) Restore(data string) error {
	var s snapshot
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return err
	}

	// The store is opaque; never let a corrupt snapshot put the ledger in
	// a state Accrue and Redeem cannot reach.
	if s.Cups < 0 || s.Cups >= CupsPerReward {
		return fmt.Errorf("%w: cups %d", ErrCorruptSnapshot, s.Cups)
	}
	if s.Points < 0 {
		return fmt.Errorf("%w: points %d", ErrCorruptSnapshot, s.Points)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.cups = s.Cups
	l.points = s.Points
	l.accruals = s.Accruals
	l.rewards = s.Rewards
	return nil
}
