package utils

import (
	"time"
)

// DateLayout is the wire format for all date fields (DD-MM-YYYY)
const DateLayout = "02-01-2006"

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
