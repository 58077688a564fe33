package leveling

// Log messages
const (
	LogMsgXPAwarded          = "XP awarded"
	LogMsgLevelUp            = "Member leveled up"
	LogMsgAwardSkipped       = "XP award skipped"
	LogMsgXPGranted          = "XP granted by administrator"
	LogMsgGuildSettingsError = "Failed to read guild settings for XP award"
	LogMsgAccentColorSet     = "Accent color updated"
	LogMsgBackgroundSet      = "Background updated"
)

// Error messages
const (
	ErrMsgApplyAwardFailed     = "failed to apply XP award"
	ErrMsgReadProgressFailed   = "failed to read member progress"
	ErrMsgReadLeaderboard      = "failed to read leaderboard"
	ErrMsgReadRankFailed       = "failed to read member rank"
	ErrMsgUpdateCosmeticFailed = "failed to update cosmetic"
	ErrMsgOwnershipFailed      = "failed to check background ownership"
	ErrMsgGrantNotPositive     = "grant amount must be positive"
)
