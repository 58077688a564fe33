package domain

import "time"

// Cosmetic defaults
const (
	DefaultBackground  = "default"
	DefaultAccentColor = uint32(0xFFFFFF)
	MaxAccentColor     = uint32(0xFFFFFF)
)

// Leveling defaults
const (
	DefaultXPCooldown      = 120 * time.Second
	DefaultXPMin           = 3
	DefaultXPMax           = 5
	DefaultLeaderboardSize = 10
	MinLevel               = 1
)

// Guild configuration limits
const (
	MaxPrefixLength = 15
)

// Economy constants
const (
	CurrencyName     = "credits"
	DailyBase        = 150
	DailyStreakBonus = 20
	DailyBonusEvery  = 5
	DailyCooldown    = 24 * time.Hour
	DailyStreakGrace = 48 * time.Hour
)

// Item kinds
const (
	ItemKindBackground = "background"
)

// Reminder limits
const (
	ReminderCap = 5
)

// Tag limits
const (
	MaxTagNameLength    = 20
	MaxTagContentLength = 2000
	TagBoardSize        = 3
)

// Poll limits
const (
	MinPollOptions = 2
	MaxPollOptions = 10
)

// Cooldown action names
const (
	ActionDaily = "daily"
)
