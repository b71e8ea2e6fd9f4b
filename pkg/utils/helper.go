package utils

import (
	"strconv"
)

// ParseInt64 converts string to int64, returns 0 when empty or malformed
func ParseInt64(value string) int64 {
	if value == "" {
		return 0
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}

	return result
}
