package discord

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatNumber groups digits for display: 1234567 -> "1,234,567".
// Printers are not safe for concurrent use, so each call gets its own.
func formatNumber(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// formatCredits renders an amount of the bot's currency
func formatCredits(n int64) string {
	return formatNumber(n) + " 💎"
}

// displayName turns a catalog key into a title: "night_sky" -> "Night Sky"
func displayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// formatDuration renders a remaining time with its two most significant units
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "1s"
	}
	d = d.Round(time.Second)

	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int(d / time.Second)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "~", `\~`, "`", "\\`", "|", `\|`, ">", `\>`,
)

// escapeMarkdown makes Discord show text exactly as typed
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// truncateRunes cuts s to at most n runes
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// plural picks the singular form for exactly one
func plural(n int64, singular, many string) string {
	if n == 1 {
		return singular
	}
	return many
}
