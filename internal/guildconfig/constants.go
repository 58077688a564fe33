package guildconfig

import "time"

// Guard commands stay usable so a guild can always re-enable what it disabled.
const (
	CommandGuard = "command"
	CommandHelp  = "help"
)

const (
	maxCachedGuilds = 4096

	// DefaultCacheTTL bounds how long a cached settings row may be served
	DefaultCacheTTL = 5 * time.Minute
)

// Log messages
const (
	LogMsgGuildSettingsCreated = "Guild settings loaded"
	LogMsgPrefixChanged        = "Guild prefix changed"
	LogMsgCommandToggled       = "Guild command toggled"
	LogMsgGuardStoreError      = "Dispatch guard store lookup failed"
	LogMsgGuardDenied          = "Command denied by dispatch guard"
)

// Error messages
const (
	ErrMsgLoadSettingsFailed   = "failed to load guild settings: %w"
	ErrMsgUpdateSettingsFailed = "failed to update guild settings: %w"
	ErrMsgPrefixEmpty          = "prefix must not be empty"
	ErrMsgPrefixTooLongFmt     = "prefix must be at most %d characters"
	ErrMsgPrefixWhitespace     = "prefix must not contain whitespace"
	ErrMsgPrefixIsDefault      = "prefix is already the default"
)
