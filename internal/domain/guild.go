package domain

import "time"

// GuildConfig holds every per-guild setting: persistence flags, prefix and disabled commands.
type GuildConfig struct {
	GuildID                int64     `json:"guild_id,string"`
	Prefix                 *string   `json:"prefix,omitempty"`
	MentionPrefix          bool      `json:"mention_prefix"`
	XPEnabled              bool      `json:"xp_enabled"`
	LevelupMessagesEnabled bool      `json:"levelup_messages_enabled"`
	DisabledCommands       []string  `json:"disabled_commands"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// IsDisabled reports whether the named command is disabled in this guild.
func (c *GuildConfig) IsDisabled(command string) bool {
	for _, d := range c.DisabledCommands {
		if d == command {
			return true
		}
	}
	return false
}

// BlacklistEntry is a blacklisted guild or user.
type BlacklistEntry struct {
	ID        int64     `json:"id,string"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
