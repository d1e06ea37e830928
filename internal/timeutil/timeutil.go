package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// scheduleLayouts are the date formats seen on event schedule pages, most specific first.
var scheduleLayouts = []string{
	DateLayout,
	"Monday, January 2, 2006",
	"Monday, January 02, 2006",
	"Mon, January 2, 2006",
	"Mon, Jan 2, 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"1/2/2006",
	"01/02/2006",
	time.RFC3339,
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseScheduleDate accepts the canonical layout and the long-form dates printed on
// schedule pages ("Saturday, January 13, 2024") and returns the calendar date in UTC.
func ParseScheduleDate(value string) (time.Time, error) {
	cleaned := strings.Join(strings.Fields(value), " ")
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range scheduleLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// CanonicalDate normalizes any supported schedule date to YYYY-MM-DD.
func CanonicalDate(value string) (string, error) {
	parsed, err := ParseScheduleDate(value)
	if err != nil {
		return "", err
	}
	return FormatDate(parsed), nil
}
