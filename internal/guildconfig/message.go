package guildconfig

import "strings"

// TextInvocation is a prefixed or mention invocation parsed from a chat message
type TextInvocation struct {
	Command string
	Args    []string
}

// ParseTextInvocation splits content into a lower-cased command name and its
// arguments when it starts with the prefix or, when mention is true, a mention
// of the bot. It does not check that the command exists.
func ParseTextInvocation(content, prefix string, mention bool, botID string) (TextInvocation, bool) {
	rest, ok := stripInvocation(content, prefix, mention, botID)
	if !ok {
		return TextInvocation{}, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return TextInvocation{}, false
	}
	return TextInvocation{Command: strings.ToLower(fields[0]), Args: fields[1:]}, true
}

// IsCommandMessage reports whether content invokes a registered command, either through
// the prefix or, when mention is true, by mentioning the bot first.
func IsCommandMessage(content, prefix string, mention bool, botID string, registered func(string) bool) bool {
	inv, ok := ParseTextInvocation(content, prefix, mention, botID)
	return ok && registered(inv.Command)
}

// IsBareMention reports whether content is nothing but a mention of the bot
func IsBareMention(content, botID string) bool {
	content = strings.TrimSpace(content)
	return content == "<@"+botID+">" || content == "<@!"+botID+">"
}

func stripInvocation(content, prefix string, mention bool, botID string) (string, bool) {
	content = strings.TrimSpace(content)
	if prefix != "" && strings.HasPrefix(content, prefix) {
		return content[len(prefix):], true
	}
	if mention && botID != "" {
		for _, m := range []string{"<@" + botID + ">", "<@!" + botID + ">"} {
			if strings.HasPrefix(content, m) {
				return content[len(m):], true
			}
		}
	}
	return "", false
}
