package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetMemberFailed      = "Failed to retrieve member"
	ErrMsgGetEventsFailed      = "Failed to retrieve events"
	ErrMsgMemberNotRanked      = "Member has not received XP yet"
)

// Log messages
const (
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgInvalidParams     = "Invalid request parameters"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgLeaderboardServed = "Leaderboard served"
)

// Health response values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
)

// Query defaults
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 50
	DefaultEventsLimit      = 25
)
