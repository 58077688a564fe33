package config

import "time"

// Defaults for optional environment variables
const (
	DefaultPrefix               = "m!"
	DefaultDBMaxConns           = 20
	DefaultDBMaxConnIdleTime    = 30 * time.Minute
	DefaultDBMaxConnLifetime    = time.Hour
	DefaultStoreTimeout         = 5 * time.Second
	DefaultXPCooldown           = 120 * time.Second
	DefaultXPMin                = 3
	DefaultXPMax                = 5
	DefaultLeaderboardCacheTTL  = 30 * time.Second
	DefaultLeaderboardSize      = 10
	DefaultBackgroundsDir       = "assets/backgrounds"
	DefaultAvatarFetchTimeout   = 5 * time.Second
	DefaultReminderPollInterval = 5 * time.Second
	DefaultStatusRotateInterval = 10 * time.Minute
	DefaultAnnounceRate         = 1.0
	DefaultAnnounceBurst        = 3
	DefaultDeadLetterPath       = "logs/deadletter.jsonl"
	DefaultEventLogRetention    = 30
)

const (
	ErrMsgInvalidConfig = "invalid configuration"
)
