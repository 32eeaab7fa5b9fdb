package events

import "time"

// OrderCompletedEvent is published after a checkout commits. Consumers are
// downstream analytics; delivery is best-effort and never blocks the commit.
type OrderCompletedEvent struct {
	EventID      string    `json:"event_id"`
	OrderID      string    `json:"order_id"`
	UserID       string    `json:"user_id"`
	Total        string    `json:"total"`
	Currency     string    `json:"currency"`
	ItemCount    int       `json:"item_count"`
	RewardEarned bool      `json:"reward_earned"`
	Timestamp    time.Time `json:"timestamp"`
}
