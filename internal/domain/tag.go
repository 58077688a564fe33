package domain

import "time"

// Tag is a named snippet of text stored per guild. Names are lower case and unique within a guild.
type Tag struct {
	ID        int64     `json:"id"`
	GuildID   int64     `json:"guild_id,string"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"owner_id,string"`
	Content   string    `json:"content"`
	Usages    int64     `json:"usages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagBoard ranks a guild's tags by use and by age
type TagBoard struct {
	MostUsed []Tag `json:"most_used"`
	Oldest   []Tag `json:"oldest"`
}
