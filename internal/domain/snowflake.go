package domain

import (
	"fmt"
	"strconv"
)

// ParseSnowflake converts a platform identifier into the 64-bit integer form used by the store.
func ParseSnowflake(id string) (int64, error) {
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: snowflake %q", ErrInvalidInput, id)
	}
	return v, nil
}

// FormatSnowflake is the inverse of ParseSnowflake.
func FormatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}
