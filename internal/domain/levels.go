package domain

import "time"

// MemberProgress is the XP record of one member in one guild.
type MemberProgress struct {
	UserID        int64     `json:"user_id,string"`
	GuildID       int64     `json:"guild_id,string"`
	XP            int64     `json:"xp"`
	Level         int       `json:"level"`
	LastAwardAt   time.Time `json:"last_award_at"`
	AccentColor   uint32    `json:"accent_color"`
	BackgroundKey string    `json:"background_key"`
	CreatedAt     time.Time `json:"created_at"`
}

// RankedMember is a MemberProgress with its 1-indexed position in the guild ordering.
type RankedMember struct {
	MemberProgress
	Rank int `json:"rank"`
}

// Leaderboard is the top page of a guild plus the requester's own standing.
// Self is nil when the requester has no progress row.
type Leaderboard struct {
	GuildID int64          `json:"guild_id,string"`
	Entries []RankedMember `json:"entries"`
	Self    *RankedMember  `json:"self,omitempty"`
}

// MessageEvent is the inbound "message received" signal driving XP accrual.
type MessageEvent struct {
	GuildID     int64
	ChannelID   int64
	UserID      int64
	DisplayName string
	IsBot       bool
	IsCommand   bool
	Timestamp   time.Time
}

// AwardSkipReason explains why a message did not grant XP.
type AwardSkipReason string

const (
	SkipNone       AwardSkipReason = ""
	SkipBot        AwardSkipReason = "bot"
	SkipCommand    AwardSkipReason = "command"
	SkipXPDisabled AwardSkipReason = "xp_disabled"
	SkipOnCooldown AwardSkipReason = "cooldown"
	SkipRaceLoss   AwardSkipReason = "race_loss"
	SkipNoGuild    AwardSkipReason = "no_guild"
)

// AwardResult is the outcome of an award attempt.
type AwardResult struct {
	Skipped   AwardSkipReason `json:"skipped,omitempty"`
	XPGained  int64           `json:"xp_gained"`
	NewXP     int64           `json:"new_xp"`
	OldLevel  int             `json:"old_level"`
	NewLevel  int             `json:"new_level"`
	LeveledUp bool            `json:"leveled_up"`
}

// Awarded reports whether XP was actually granted.
func (r *AwardResult) Awarded() bool {
	return r != nil && r.Skipped == SkipNone && r.XPGained > 0
}
