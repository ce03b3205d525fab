package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AllToken disables a month or day filter
const AllToken = "all"

// MonthNames lists the selectable months; source data covers January to June only.
var MonthNames = []string{"january", "february", "march", "april", "may", "june"}

// DayNames is indexed by ISO weekday, 0 = Monday.
var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MonthFilter is a month number 1-6, or 0 for no filter.
type MonthFilter int

// AllMonths disables month filtering
const AllMonths MonthFilter = 0

// ParseMonthFilter accepts a month name or "all", case-insensitively.
func ParseMonthFilter(s string) (MonthFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == AllToken {
		return AllMonths, nil
	}
	for i, name := range MonthNames {
		if s == name {
			return MonthFilter(i + 1), nil
		}
	}
	return AllMonths, fmt.Errorf("unknown month %q", s)
}

// IsAll reports whether m keeps every month
func (m MonthFilter) IsAll() bool {
	return m == AllMonths
}

// String returns the lowercase month name, or "all"
func (m MonthFilter) String() string {
	if m.IsAll() {
		return AllToken
	}
	if int(m) >= 1 && int(m) <= len(MonthNames) {
		return MonthNames[m-1]
	}
	return fmt.Sprintf("month(%d)", int(m))
}

// DayFilter is an ISO weekday 0-6, or -1 for no filter.
type DayFilter int

// AllDays disables weekday filtering
const AllDays DayFilter = -1

// ParseDayFilter accepts an integer 0-6 (0 = Monday) or "all".
func ParseDayFilter(s string) (DayFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == AllToken {
		return AllDays, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return AllDays, fmt.Errorf("day %q is not an integer: %w", s, err)
	}
	if n < 0 || n > 6 {
		return AllDays, fmt.Errorf("day %d is outside 0-6", n)
	}
	return DayFilter(n), nil
}

// IsAll reports whether d keeps every weekday
func (d DayFilter) IsAll() bool {
	return d == AllDays
}

// String returns the weekday name, or "all"
func (d DayFilter) String() string {
	if d.IsAll() {
		return AllToken
	}
	if int(d) >= 0 && int(d) < len(DayNames) {
		return DayNames[d]
	}
	return fmt.Sprintf("day(%d)", int(d))
}

// Selection is one validated set of filters chosen in the shell.
type Selection struct {
	City  string
	Month MonthFilter
	Day   DayFilter
}
