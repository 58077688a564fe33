package domain

// Event type constants used across the application for event bus subscriptions.
//
// Event types follow the pattern: <entity>.<action> (e.g., "level.up")
const (
	// EventTypeLevelUp is published when a member crosses one or more level thresholds
	EventTypeLevelUp = "level.up"

	// EventTypeXPAwarded is published for every successful XP grant
	EventTypeXPAwarded = "xp.awarded"

	// EventTypeGuildBlacklisted is published when the bot leaves a blacklisted guild
	EventTypeGuildBlacklisted = "guild.blacklisted"
)

// LevelUpPayload is the event payload for level.up events
type LevelUpPayload struct {
	GuildID     int64  `json:"guild_id,string"`
	ChannelID   int64  `json:"channel_id,string"`
	UserID      int64  `json:"user_id,string"`
	DisplayName string `json:"display_name"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	Timestamp   int64  `json:"timestamp"`
}

// XPAwardedPayload is the event payload for xp.awarded events
type XPAwardedPayload struct {
	GuildID   int64  `json:"guild_id,string"`
	UserID    int64  `json:"user_id,string"`
	Amount    int64  `json:"amount"`
	TotalXP   int64  `json:"total_xp"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// GuildBlacklistedPayload is the event payload for guild.blacklisted events
type GuildBlacklistedPayload struct {
	GuildID   int64  `json:"guild_id,string"`
	OwnerID   int64  `json:"owner_id,string"`
	Notified  bool   `json:"notified"`
	Timestamp int64  `json:"timestamp"`
	Reason    string `json:"reason"`
}

// XP award sources
const (
	XPSourceMessage = "message"
	XPSourceGrant   = "grant"
)
