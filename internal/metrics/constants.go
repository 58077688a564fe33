package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
	MetricNameEventsDeadLettered = "events_dead_lettered_total"
)

// Leveling metric names
const (
	MetricNameXPAwarded           = "xp_awarded_total"
	MetricNameXPAwardsSkipped     = "xp_awards_skipped_total"
	MetricNameLevelUps            = "level_ups_total"
	MetricNameLeaderboardCache    = "leaderboard_cache_lookups_total"
	MetricNameLevelUpAnnouncement = "level_up_announcements_total"
)

// Discord metric names
const (
	MetricNameCommandsTotal    = "discord_commands_total"
	MetricNameCommandDuration  = "discord_command_duration_seconds"
	MetricNameGuildsLeft       = "discord_blacklisted_guilds_left_total"
	MetricNameGuardDenials     = "discord_guard_denials_total"
	MetricNameProfilesRendered = "profiles_rendered_total"
	MetricNameGuilds           = "discord_guilds"
)

// Store metric names
const (
	MetricNameStoreErrors = "store_errors_total"
)

// Economy metric names
const (
	MetricNameItemsBought = "items_bought_total"
	MetricNameMoneyEarned = "money_earned_total"
	MetricNameMoneySpent  = "money_spent_total"
)

// Reminder metric names
const (
	MetricNameRemindersDelivered = "reminders_delivered_total"
)

// Tag metric names
const (
	MetricNameTagOperations = "tag_operations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
	HelpTextEventsDeadLettered = "Total number of events written to the dead-letter file"
)

// Leveling metric help text
const (
	HelpTextXPAwarded           = "Total XP granted to members"
	HelpTextXPAwardsSkipped     = "Messages that did not grant XP, by reason"
	HelpTextLevelUps            = "Total number of level-ups"
	HelpTextLeaderboardCache    = "Leaderboard page cache lookups, by result"
	HelpTextLevelUpAnnouncement = "Level-up announcements, by outcome"
)

// Discord metric help text
const (
	HelpTextCommandsTotal    = "Total number of slash and prefixed commands handled, by command and outcome"
	HelpTextCommandDuration  = "Command handling latency in seconds"
	HelpTextGuildsLeft       = "Blacklisted guilds the bot left on join"
	HelpTextGuardDenials     = "Commands refused by the dispatch guard, by reason"
	HelpTextProfilesRendered = "Profile cards rendered"
	HelpTextGuilds           = "Guilds the bot is currently in"
)

// Store metric help text
const (
	HelpTextStoreErrors = "Store failures surfaced at the handler boundary, by kind"
)

// Economy metric help text
const (
	HelpTextItemsBought = "Total number of items bought"
	HelpTextMoneyEarned = "Total credits earned from daily rewards"
	HelpTextMoneySpent  = "Total credits spent in the shop"
)

// Reminder metric help text
const (
	HelpTextRemindersDelivered = "Reminders delivered, by outcome"
)

// Tag metric help text
const (
	HelpTextTagOperations = "Tag operations, by operation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelSource  = "source"
	LabelReason  = "reason"
	LabelResult  = "result"
	LabelCommand = "command"
	LabelKind    = "kind"
	LabelOp      = "op"
)

// Common label values
const (
	ResultHit        = "hit"
	ResultMiss       = "miss"
	ResultSuccess    = "success"
	ResultError      = "error"
	ResultDenied     = "denied"
	ResultThrottled  = "throttled"
	ResultDMFallback = "dm_fallback"
	KindUnavailable  = "unavailable"
	KindQuery        = "query"
)

// Tag operation label values
const (
	TagOpCreate = "create"
	TagOpShow   = "show"
	TagOpDelete = "delete"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CommandLatencyBuckets covers slash commands, which include a store round-trip
// and for profiles an avatar download plus image rendering.
var CommandLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
