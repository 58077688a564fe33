package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions extracts the top-level command options
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// subcommand returns the invoked subcommand name and its options
func subcommand(i *discordgo.InteractionCreate) (string, []*discordgo.ApplicationCommandInteractionDataOption) {
	opts := getOptions(i)
	if len(opts) == 0 {
		return "", nil
	}
	first := opts[0]
	if first.Type != discordgo.ApplicationCommandOptionSubCommand && first.Type != discordgo.ApplicationCommandOptionSubCommandGroup {
		return "", opts
	}
	return first.Name, first.Options
}

// optionMap indexes options by name
func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// optionUser resolves a user option without a session lookup when the
// interaction carries the resolved user
func optionUser(i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) *discordgo.User {
	id, _ := opt.Value.(string)
	data := i.ApplicationCommandData()
	if data.Resolved != nil {
		if u, ok := data.Resolved.Users[id]; ok {
			return u
		}
	}
	return &discordgo.User{ID: id}
}

// optionMember returns the resolved guild member of a user option, if present
func optionMember(i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) *discordgo.Member {
	id, _ := opt.Value.(string)
	data := i.ApplicationCommandData()
	if data.Resolved == nil {
		return nil
	}
	return data.Resolved.Members[id]
}

// getFocusedOptionValue returns the lower-cased value of the option being autocompleted
func getFocusedOptionValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			return strings.ToLower(opt.StringValue())
		}
		if v := getFocusedOptionValue(opt.Options); v != "" {
			return v
		}
	}
	return ""
}

// memberDisplayName prefers the guild nickname, then the global name, then the username
func memberDisplayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

func boolPtr(b bool) *bool {
	return &b
}

func int64Ptr(n int64) *int64 {
	return &n
}

func float64Ptr(f float64) *float64 {
	return &f
}
