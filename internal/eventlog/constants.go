package eventlog

// DefaultRetentionDays is how long audit rows are kept when no retention is configured
const DefaultRetentionDays = 30

// Query limits
const (
	DefaultQueryLimit = 25
	MaxQueryLimit     = 100
)

// Log messages - service events
const (
	LogMsgFailedToLogEvent    = "Failed to log event to database"
	LogMsgEventLogged         = "Event logged to database"
	LogMsgUnknownPayloadShape = "Event payload has no guild or user, logging without ids"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldGuildID       = "guild_id"
	LogFieldUserID        = "user_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// Error messages
const (
	ErrMsgEncodePayload = "failed to encode event payload: %w"
	ErrMsgLogEvent      = "failed to log event: %w"
	ErrMsgQueryEvents   = "failed to query events: %w"
	ErrMsgCleanup       = "failed to clean up events: %w"
)
