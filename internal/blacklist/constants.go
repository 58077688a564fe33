package blacklist

// Kind selects the guild or user blacklist
type Kind string

const (
	KindGuild Kind = "guild"
	KindUser  Kind = "user"
)

const storeKindBlacklist = "blacklist"

// Log messages
const (
	LogMsgGuildBlacklisted     = "Guild blacklisted"
	LogMsgUserBlacklisted      = "User blacklisted"
	LogMsgBlacklistRemoved     = "Blacklist entry removed"
	LogMsgGateLookupFailed     = "Guild join gate lookup failed; allowing guild"
	LogMsgBlacklistedGuildLeft = "Left blacklisted guild"
)

// Error messages
const (
	ErrMsgLookupFailed = "failed to look up blacklist: %w"
	ErrMsgUpdateFailed = "failed to update blacklist: %w"
	ErrMsgUnknownKind  = "unknown blacklist kind: %s: %w"
	ErrMsgInvalidID    = "blacklist id must be positive: %w"
)
