// Package poll builds reaction polls and counts their votes. A poll keeps no
// state of its own; the posted message is the record.
package poll

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// FooterPrefix marks a bot message as a poll
const FooterPrefix = "Poll ID: "

// OptionSeparator splits the option list typed by the user
const OptionSeparator = "|"

// MaxOptionLength keeps every option on one embed line
const MaxOptionLength = 100

// Emojis are the vote reactions in option order
var Emojis = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// Option is one choice with its vote reaction
type Option struct {
	Emoji string
	Text  string
}

// Poll is a question and its choices
type Poll struct {
	Question string
	Options  []Option
}

// Result is an option with its vote count
type Result struct {
	Option
	Votes int
}

// New validates the question and splits raw on OptionSeparator into options
func New(question, raw string) (*Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoQuestion)
	}

	var texts []string
	for _, part := range strings.Split(raw, OptionSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			texts = append(texts, part)
		}
	}
	if len(texts) < domain.MinPollOptions || len(texts) > domain.MaxPollOptions {
		return nil, fmt.Errorf("%w: "+ErrMsgOptionCountFmt, domain.ErrInvalidInput, domain.MinPollOptions, domain.MaxPollOptions)
	}

	p := &Poll{Question: question}
	for i, text := range texts {
		if utf8.RuneCountInString(text) > MaxOptionLength {
			return nil, fmt.Errorf("%w: "+ErrMsgOptionTooLongFmt, domain.ErrInvalidInput, MaxOptionLength)
		}
		p.Options = append(p.Options, Option{Emoji: Emojis[i], Text: text})
	}
	return p, nil
}

// Description renders one "emoji text" line per option
func (p *Poll) Description() string {
	lines := make([]string, len(p.Options))
	for i, o := range p.Options {
		lines[i] = o.Emoji + " " + o.Text
	}
	return strings.Join(lines, "\n")
}

// ParseDescription recovers the options from a posted poll's description.
// Lines that do not start with a vote emoji are skipped.
func ParseDescription(desc string) []Option {
	var options []Option
	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimSpace(line)
		for _, e := range Emojis {
			if text, ok := strings.CutPrefix(line, e); ok {
				options = append(options, Option{Emoji: e, Text: strings.TrimSpace(text)})
				break
			}
		}
	}
	return options
}

// Tally pairs options with their reaction counts. counts is keyed by emoji and
// includes the bot's own seed reaction when botReacted reports true for that emoji.
func Tally(options []Option, counts map[string]int, botReacted func(emoji string) bool) []Result {
	byEmoji := make(map[string]int, len(counts))
	for emoji, n := range counts {
		key := normalizeEmoji(emoji)
		if botReacted != nil && botReacted(emoji) {
			n--
		}
		byEmoji[key] += max(n, 0)
	}

	results := make([]Result, len(options))
	for i, o := range options {
		results[i] = Result{Option: o, Votes: byEmoji[normalizeEmoji(o.Emoji)]}
	}
	return results
}

// normalizeEmoji drops variation selectors so "1⃣" and "1️⃣" compare equal
func normalizeEmoji(e string) string {
	return strings.ReplaceAll(e, "\ufe0f", "")
}
