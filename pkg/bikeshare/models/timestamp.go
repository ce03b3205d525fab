package models

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the format of the Start Time and End Time columns
const TimestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses a trip timestamp. Source files carry no zone, so the
// wall clock is kept as is (UTC) and derived fields follow it.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse time %q: %w", s, err)
	}
	return t, nil
}

// MonthOf returns the calendar month 1-12
func MonthOf(t time.Time) int {
	return int(t.Month())
}

// WeekdayOf returns the ISO day of week with Monday as 0 and Sunday as 6.
func WeekdayOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// HourOf returns the hour of day 0-23
func HourOf(t time.Time) int {
	return t.Hour()
}
