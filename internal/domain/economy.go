package domain

import "time"

// Wallet is a user's global credit balance and daily streak.
type Wallet struct {
	UserID      int64      `json:"user_id,string"`
	Balance     int64      `json:"balance"`
	Streak      int        `json:"streak"`
	LastDailyAt *time.Time `json:"last_daily_at,omitempty"`
}

// Item is a purchasable cosmetic.
type Item struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// DailyResult describes a claimed daily reward.
type DailyResult struct {
	Amount     int64 `json:"amount"`
	Streak     int   `json:"streak"`
	NewBalance int64 `json:"new_balance"`
	StreakLost bool  `json:"streak_lost"`
}

// PurchaseResult describes a completed purchase.
type PurchaseResult struct {
	Item       Item  `json:"item"`
	NewBalance int64 `json:"new_balance"`
}
