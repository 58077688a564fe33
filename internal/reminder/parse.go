package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/sho0pi/naturaltime"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// TimeParser resolves user-written times such as "in 2 hours", "tomorrow at 5pm" or "90m"
type TimeParser struct {
	natural *naturaltime.Parser
}

// NewTimeParser creates a parser backed by naturaltime
func NewTimeParser() (*TimeParser, error) {
	p, err := naturaltime.New()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParserInitFailed, err)
	}
	return &TimeParser{natural: p}, nil
}

// Parse resolves input relative to now. Natural language is tried first, then Go duration syntax.
func (p *TimeParser) Parse(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf(ErrMsgUnparsableFmt, domain.ErrReminderTimeUnparsable, input)
	}

	if p.natural != nil {
		if t, err := p.natural.ParseDate(input, now); err == nil && t != nil {
			return *t, nil
		}
	}

	if d, err := time.ParseDuration(strings.ReplaceAll(input, " ", "")); err == nil {
		return now.Add(d), nil
	}

	return time.Time{}, fmt.Errorf(ErrMsgUnparsableFmt, domain.ErrReminderTimeUnparsable, input)
}
