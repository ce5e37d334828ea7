// Package datemath holds the timezone-aware calendar arithmetic used to
// resolve relative time expressions.
package datemath

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host
)

// LoadLocation resolves an IANA timezone name such as "Asia/Ho_Chi_Minh".
// An empty name means UTC.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// AddDays moves t by n calendar days, keeping its clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysUntil returns how many days lie between from and the next target
// weekday. The result is always in [1, 7]: a weekday never resolves to
// the same day.
func DaysUntil(from, target time.Weekday) int {
	days := int(target - from)
	if days <= 0 {
		days += 7
	}
	return days
}

// NextWeekday returns the next occurrence of wd strictly after t's day,
// keeping t's clock time.
func NextWeekday(t time.Time, wd time.Weekday) time.Time {
	return AddDays(t, DaysUntil(t.Weekday(), wd))
}

// AtClock returns t's calendar day at hour:minute:00 in t's location.
func AtClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// StartOfDay returns midnight at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	return AtClock(t, 0, 0)
}

// EndOfDay returns 23:59:59 on t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
