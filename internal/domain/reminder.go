package domain

import "time"

// Reminder is a scheduled message for a user.
type Reminder struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id,string"`
	GuildID     *int64        `json:"guild_id,omitempty,string"`
	ChannelID   int64         `json:"channel_id,string"`
	Message     string        `json:"message"`
	RemindAt    time.Time     `json:"remind_at"`
	RepeatEvery time.Duration `json:"repeat_every"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Repeats reports whether the reminder reschedules itself after firing.
func (r *Reminder) Repeats() bool {
	return r.RepeatEvery > 0
}
