package leveling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// NamedColors are the accent colors accepted by name
var NamedColors = map[string]uint32{
	"white":   0xFFFFFF,
	"black":   0x000000,
	"red":     0xE74C3C,
	"orange":  0xE67E22,
	"gold":    0xF1C40F,
	"yellow":  0xFFFF00,
	"green":   0x2ECC71,
	"teal":    0x1ABC9C,
	"blue":    0x3498DB,
	"blurple": 0x5865F2,
	"purple":  0x9B59B6,
	"magenta": 0xE91E63,
	"pink":    0xFF73FA,
	"grey":    0x95A5A6,
	"gray":    0x95A5A6,
}

// ParseColor accepts "#RRGGBB", "RRGGBB", "0xRRGGBB" or a name from NamedColors.
func ParseColor(raw string) (uint32, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if c, ok := NamedColors[s]; ok {
		return c, nil
	}

	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"):
		s = s[2:]
	}
	if len(s) != 6 {
		return 0, fmt.Errorf("%w: color %q", domain.ErrInvalidCosmetic, raw)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q", domain.ErrInvalidCosmetic, raw)
	}
	return uint32(v), nil
}

// FormatColor renders c as "#RRGGBB".
func FormatColor(c uint32) string {
	return fmt.Sprintf("#%06X", c&domain.MaxAccentColor)
}
