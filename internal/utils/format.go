package utils

import (
	"strconv"
	"strings"
)

var humanizeSuffixes = []string{"", "K", "M", "G", "T", "P", "E"}

// HumanizeCount shortens large counts for tight layouts: 950 -> "950", 1250 -> "1.25K", 3400000 -> "3.4M".
func HumanizeCount(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	value := float64(n)
	unit := 0
	for value >= 1000 && unit < len(humanizeSuffixes)-1 {
		value /= 1000
		unit++
	}
	if unit == 0 {
		return sign + strconv.FormatInt(n, 10)
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return sign + s + humanizeSuffixes[unit]
}
