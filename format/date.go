package format

import (
	"strings"
	"time"
)

// DateLayout renders e.g. "Mar 5, 2024, 02:07 PM"
const DateLayout = "Jan 2, 2006, 03:04 PM"

// InvalidDate is rendered for input that cannot be parsed
const InvalidDate = "Invalid Date"

type layout struct {
	value string
	utc   bool
}

// Zone-less date-times are local time; bare dates are UTC midnight.
var layouts = []layout{
	{value: time.RFC3339},
	{value: "2006-01-02T15:04:05"},
	{value: "2006-01-02T15:04"},
	{value: "2006-01-02 15:04:05"},
	{value: "2006-01-02", utc: true},
}

// ParseDate parses ISO-8601 values the way the API emits them.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, candidate := range layouts {
		in := loc
		if candidate.utc {
			in = time.UTC
		}
		if ts, err := time.ParseInLocation(candidate.value, value, in); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Date renders value in the local time zone.
func Date(value string) string {
	return DateIn(value, time.Local)
}

// DateIn renders value in loc, or InvalidDate when it cannot be parsed.
func DateIn(value string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	ts, ok := ParseDate(value, loc)
	if !ok {
		return InvalidDate
	}
	return ts.In(loc).Format(DateLayout)
}
